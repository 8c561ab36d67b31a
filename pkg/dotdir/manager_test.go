package dotdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/jumpmap/pkg/dotdir"
)

var _ = Describe("dotdir", func() {
	var tmpDir string
	var m *dotdir.Manager

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dotdir-test-*")
		Expect(err).NotTo(HaveOccurred())

		// Resolve symlinks so paths match filepath.Abs results
		// (e.g. on macOS /var -> /private/var).
		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		GinkgoT().Setenv("HOME", tmpDir)
		GinkgoT().Setenv("XDG_CONFIG_HOME", "")

		m = dotdir.NewManager()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("NewManager", func() {
		It("creates a new manager", func() {
			Expect(m).ToNot(BeNil())
		})
	})

	Describe("Target", func() {
		It("creates the override directory if it doesn't exist", func() {
			dir := filepath.Join(tmpDir, "newdir")
			result, err := m.Target(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(dir))

			info, err := os.Stat(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})

		It("returns existing directory without error", func() {
			result, err := m.Target(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(tmpDir))
		})

		It("uses XDG_CONFIG_HOME when set", func() {
			xdg := filepath.Join(tmpDir, "xdg")
			GinkgoT().Setenv("XDG_CONFIG_HOME", xdg)

			result, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(xdg, "jumpmap")))
		})

		It("falls back to ~/.config/jumpmap", func() {
			result, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(tmpDir, ".config", "jumpmap")))
		})
	})

	Describe("Resolve", func() {
		It("does not create the directory", func() {
			xdg := filepath.Join(tmpDir, "xdg")
			GinkgoT().Setenv("XDG_CONFIG_HOME", xdg)

			result, err := m.Resolve("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(xdg, "jumpmap")))

			_, err = os.Stat(xdg)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("resolves under a parent that can never be created", func() {
			blocker := filepath.Join(tmpDir, "notadir")
			Expect(os.WriteFile(blocker, []byte("x"), 0o644)).To(Succeed())
			GinkgoT().Setenv("XDG_CONFIG_HOME", blocker)

			result, err := m.Resolve("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(blocker, "jumpmap")))

			_, err = m.Target("")
			Expect(err).To(MatchError(ContainSubstring("creating jumpmap directory")))
		})
	})

	Describe("WithEnv", func() {
		It("reads HOME and XDG_CONFIG_HOME from the given lookup", func() {
			env := map[string]string{
				"HOME":            filepath.Join(tmpDir, "other-home"),
				"XDG_CONFIG_HOME": filepath.Join(tmpDir, "other-xdg"),
			}
			sm := dotdir.NewManager(dotdir.WithEnv(func(k string) string { return env[k] }))

			dir, err := sm.Resolve("")
			Expect(err).NotTo(HaveOccurred())
			Expect(dir).To(Equal(filepath.Join(tmpDir, "other-xdg", "jumpmap")))

			store, err := sm.StorePath("")
			Expect(err).NotTo(HaveOccurred())
			Expect(store).To(Equal(filepath.Join(tmpDir, "other-home", ".jumpmap.json")))

			Expect(sm.ExpandHome("~/x")).To(Equal(filepath.Join(tmpDir, "other-home", "x")))
		})

		It("falls back to ~/.config when XDG_CONFIG_HOME is blank", func() {
			env := map[string]string{"HOME": tmpDir, "XDG_CONFIG_HOME": "  "}
			sm := dotdir.NewManager(dotdir.WithEnv(func(k string) string { return env[k] }))

			dir, err := sm.Resolve("")
			Expect(err).NotTo(HaveOccurred())
			Expect(dir).To(Equal(filepath.Join(tmpDir, ".config", "jumpmap")))
		})
	})

	Describe("StorePath", func() {
		It("defaults to ~/.jumpmap.json without creating it", func() {
			result, err := m.StorePath("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(tmpDir, ".jumpmap.json")))

			_, err = os.Stat(result)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("expands a leading tilde in the override", func() {
			result, err := m.StorePath("~/bookmarks.json")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(tmpDir, "bookmarks.json")))
		})

		It("makes a relative override absolute", func() {
			result, err := m.StorePath("rel.json")
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.IsAbs(result)).To(BeTrue())
		})
	})

	Describe("ExpandHome", func() {
		It("leaves other paths alone", func() {
			Expect(dotdir.ExpandHome("/etc/x")).To(Equal("/etc/x"))
			Expect(dotdir.ExpandHome("~user/x")).To(Equal("~user/x"))
		})

		It("expands a bare tilde", func() {
			Expect(dotdir.ExpandHome("~")).To(Equal(tmpDir))
		})
	})
})
