// Jumpmap CI
//
// Package main provides reproducible builds and tests locally and in GitHub actions.
package main

import (
	"context"

	"dagger/jumpmap/internal/dagger"
)

// Jumpmap is the main module for the jumpmap CI pipeline
type Jumpmap struct {
	// Project source directory
	//
	// +private
	Source *dagger.Directory
}

// New creates a new Jumpmap CI module instance
func New(
	// Project source directory.
	//
	// +defaultPath="/"
	// +ignore=[".git", ".direnv", "build", "tmp"]
	source *dagger.Directory,
) *Jumpmap {
	return &Jumpmap{
		Source: source,
	}
}

// goContainer returns a Go container with the project source mounted and
// module caches attached. jumpmap is pure Go, so CGO stays off.
func (j *Jumpmap) goContainer() *dagger.Container {
	return dag.Container().
		From("golang:1.25-alpine").
		WithEnvVariable("CGO_ENABLED", "0").
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("go-mod")).
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("go-build")).
		WithWorkdir("/src").
		WithDirectory("/src", j.Source)
}

// Test runs the unit tests via "go test"
func (j *Jumpmap) Test(ctx context.Context) (string, error) {
	return j.goContainer().
		WithExec([]string{"go", "test", "-v", "./..."}).
		Stdout(ctx)
}

// Vet runs "go vet" over the module
func (j *Jumpmap) Vet(ctx context.Context) (string, error) {
	return j.goContainer().
		WithExec([]string{"go", "vet", "./..."}).
		Stdout(ctx)
}
