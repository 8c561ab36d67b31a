package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dagger/jumpmap/internal/dagger"
)

// CheckTidy fails when "go mod tidy" would change go.mod or go.sum, or when
// any Go file outside _examples is not gofmt-clean.
//
// +check
func (j *Jumpmap) CheckTidy(ctx context.Context) (string, error) {
	ctr := j.goContainer()

	if _, err := ctr.WithExec([]string{"go", "mod", "tidy", "-diff"}).Stdout(ctx); err != nil {
		var e *dagger.ExecError
		if errors.As(err, &e) {
			return "", fmt.Errorf("go.mod or go.sum need tidying; run 'go mod tidy':\n\n%s", e.Stdout)
		}
		return "", fmt.Errorf("running go mod tidy: %w", err)
	}

	unformatted, err := ctr.
		WithExec([]string{"sh", "-c", "gofmt -l $(find . -name '*.go' -not -path './_examples/*' -not -path './.dagger/*')"}).
		Stdout(ctx)
	if err != nil {
		return "", fmt.Errorf("running gofmt: %w", err)
	}
	if files := strings.TrimSpace(unformatted); files != "" {
		return "", fmt.Errorf("files need gofmt:\n%s", files)
	}

	return "go.mod, go.sum and formatting are clean", nil
}
