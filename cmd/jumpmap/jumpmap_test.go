package jumpmapcmder_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	jumpmapcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap"
	"github.com/papercomputeco/jumpmap/pkg/bookmark"
)

var _ = Describe("NewJumpmapCmd", func() {
	It("registers every subcommand", func() {
		cmd := jumpmapcmder.NewJumpmapCmd()
		names := make([]string, 0)
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		Expect(names).To(ContainElements(
			"jump", "setjump", "deljump", "prune", "open", "complete", "init", "config", "version",
		))
	})

	It("silences cobra's own error and usage output", func() {
		cmd := jumpmapcmder.NewJumpmapCmd()
		Expect(cmd.SilenceErrors).To(BeTrue())
		Expect(cmd.SilenceUsage).To(BeTrue())
	})

	It("has the global flags", func() {
		cmd := jumpmapcmder.NewJumpmapCmd()
		for _, name := range []string{"debug", "config-dir", "store", "color", "log-format"} {
			Expect(cmd.PersistentFlags().Lookup(name)).NotTo(BeNil(), name)
		}
	})
})

var _ = Describe("DispatchArgs", func() {
	DescribeTable("argv handling",
		func(argv []string, want []string) {
			Expect(jumpmapcmder.DispatchArgs(argv)).To(Equal(want))
		},
		Entry("plain binary", []string{"/usr/bin/jumpmap", "jump", "work"}, []string{"jump", "work"}),
		Entry("jump link", []string{"/usr/local/bin/jump", "work"}, []string{"jump", "work"}),
		Entry("setjump link", []string{"setjump", "proj"}, []string{"setjump", "proj"}),
		Entry("deljump link on windows", []string{`C:\bin\deljump.exe`, "proj"}, []string{"deljump", "proj"}),
		Entry("jump link without args", []string{"jump"}, []string{"jump"}),
		Entry("empty argv", []string{}, []string{}),
	)
})

var _ = Describe("ExitCode", func() {
	It("is zero without an error", func() {
		Expect(jumpmapcmder.ExitCode(nil)).To(Equal(jumpmapcmder.ExitOK))
	})

	It("is 1 for lookup errors", func() {
		Expect(jumpmapcmder.ExitCode(bookmark.NotFoundError{Alias: "x"})).To(Equal(1))
		Expect(jumpmapcmder.ExitCode(bookmark.StaleTargetError{Alias: "x", Path: "/x"})).To(Equal(1))
		Expect(jumpmapcmder.ExitCode(errors.New("boom"))).To(Equal(1))
	})

	It("is 2 for persistence errors, even wrapped", func() {
		perr := &bookmark.PersistenceError{Path: "/p", Err: os.ErrPermission}
		Expect(jumpmapcmder.ExitCode(perr)).To(Equal(jumpmapcmder.ExitPersistence))
		Expect(jumpmapcmder.ExitCode(fmt.Errorf("setjump: %w", perr))).To(Equal(2))
	})
})

var _ = Describe("end to end", func() {
	var (
		home  string
		store string
		cwd   string
	)

	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		cmd := jumpmapcmder.NewJumpmapCmd()
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--store", store, "--color", "never"}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	BeforeEach(func() {
		var err error
		home, err = os.MkdirTemp("", "jumpmap-e2e-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, home)

		GinkgoT().Setenv("HOME", home)
		GinkgoT().Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
		store = filepath.Join(home, ".jumpmap.json")

		cwd, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
	})

	It("sets, lists, jumps to and deletes a bookmark through the JSON file", func() {
		out, err := run("setjump", "proj")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("bookmarked proj -> " + cwd + "\n"))

		data, err := os.ReadFile(store)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(fmt.Sprintf(`{"proj": %q}`, cwd)))

		out, err = run("jump")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("✓ proj -> " + cwd + "\n"))

		out, err = run("jump", "proj")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(cwd + "\n"))

		out, err = run("deljump", "proj")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("removed proj (was " + cwd + ")\n"))

		_, err = run("jump", "proj")
		Expect(err).To(MatchError(bookmark.ErrNotFound))
		Expect(jumpmapcmder.ExitCode(err)).To(Equal(1))
	})

	It("starts fresh from a corrupt store and repairs it on the next write", func() {
		Expect(os.WriteFile(store, []byte("{not json"), 0o644)).To(Succeed())

		out, err := run("jump")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("no bookmarks"))

		_, err = run("setjump", "proj")
		Expect(err).NotTo(HaveOccurred())

		data, err := os.ReadFile(store)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(fmt.Sprintf(`{"proj": %q}`, cwd)))
	})

	It("lists, jumps and completes when the config directory cannot be created", func() {
		blocker := filepath.Join(home, "notadir")
		Expect(os.WriteFile(blocker, []byte("x"), 0o644)).To(Succeed())
		GinkgoT().Setenv("XDG_CONFIG_HOME", blocker)
		Expect(os.WriteFile(store, fmt.Appendf(nil, `{"work": %q}`, cwd), 0o644)).To(Succeed())

		out, err := run("jump")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("✓ work -> " + cwd + "\n"))

		out, err = run("jump", "work")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(cwd + "\n"))

		out, err = run("complete", "w")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("work\t" + cwd + "\n"))
	})

	It("reports persistence failures with exit code 2", func() {
		blocker := filepath.Join(home, "blocker")
		Expect(os.WriteFile(blocker, []byte("x"), 0o644)).To(Succeed())
		store = filepath.Join(blocker, "marks.json")

		_, err := run("setjump", "proj")
		Expect(err).To(HaveOccurred())
		Expect(jumpmapcmder.ExitCode(err)).To(Equal(jumpmapcmder.ExitPersistence))
	})
})
