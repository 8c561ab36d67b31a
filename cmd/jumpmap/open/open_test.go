package opencmder_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
	opencmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/open"
	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	testutils "github.com/papercomputeco/jumpmap/pkg/utils/test"
)

var _ = Describe("NewOpenCmd", func() {
	var (
		root string
		h    *testutils.Harness
	)

	execute := func(args ...string) error {
		cmd := opencmder.NewOpenCmd()
		cmd.SetContext(deps.WithDependencies(context.Background(), h.Deps))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		h = testutils.NewHarness(bookmark.Map{
			"here": root,
			"gone": filepath.Join(root, "gone"),
		}, "/")
	})

	It("opens the bookmarked directory without moving the session", func() {
		Expect(execute("here")).To(Succeed())
		Expect(h.Opener.Opened).To(Equal([]string{root}))
		Expect(h.Deps.Session.Dir).To(Equal("/"))
	})

	It("fails with NotFound for unknown aliases", func() {
		Expect(execute("nope")).To(MatchError(bookmark.ErrNotFound))
		Expect(h.Opener.Opened).To(BeEmpty())
	})

	It("fails with StaleTarget for missing directories", func() {
		Expect(execute("gone")).To(MatchError(bookmark.ErrStaleTarget))
		Expect(h.Opener.Opened).To(BeEmpty())
	})

	It("wraps opener failures", func() {
		h.Opener.Err = errors.New("no opener")
		Expect(execute("here")).To(MatchError(ContainSubstring("opening " + root + ": no opener")))
	})
})
