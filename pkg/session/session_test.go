package session_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/jumpmap/pkg/session"
)

var _ = Describe("Session", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "session-test-*")
		Expect(err).NotTo(HaveOccurred())

		// Resolve symlinks so paths match (e.g. on macOS /var -> /private/var).
		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { os.RemoveAll(tmpDir) })
	})

	Describe("FromProcess", func() {
		It("captures the process working directory and environment", func() {
			GinkgoT().Setenv("JUMPMAP_SESSION_TEST", "yes")

			s, err := session.FromProcess()
			Expect(err).NotTo(HaveOccurred())

			cwd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Dir).To(Equal(cwd))
			Expect(s.Getenv("JUMPMAP_SESSION_TEST")).To(Equal("yes"))
		})
	})

	Describe("Chdir", func() {
		It("moves to an existing directory", func() {
			s := session.New("/")
			Expect(s.Chdir(tmpDir)).To(Succeed())
			Expect(s.Dir).To(Equal(tmpDir))
		})

		It("resolves relative paths against the session directory", func() {
			Expect(os.Mkdir(filepath.Join(tmpDir, "child"), 0o755)).To(Succeed())

			s := session.New(tmpDir)
			Expect(s.Chdir("child")).To(Succeed())
			Expect(s.Dir).To(Equal(filepath.Join(tmpDir, "child")))
		})

		It("leaves the directory unchanged when the target is missing", func() {
			s := session.New(tmpDir)
			Expect(s.Chdir(filepath.Join(tmpDir, "missing"))).NotTo(Succeed())
			Expect(s.Dir).To(Equal(tmpDir))
		})

		It("refuses files", func() {
			file := filepath.Join(tmpDir, "file")
			Expect(os.WriteFile(file, []byte("x"), 0o644)).To(Succeed())

			s := session.New(tmpDir)
			Expect(s.Chdir(file)).NotTo(Succeed())
			Expect(s.Dir).To(Equal(tmpDir))
		})

		It("does not touch the process working directory", func() {
			before, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())

			s := session.New("/")
			Expect(s.Chdir(tmpDir)).To(Succeed())

			after, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(before))
		})
	})

	Describe("Getwd", func() {
		It("errors when the directory is unset", func() {
			s := &session.Session{}
			_, err := s.Getwd()
			Expect(err).To(HaveOccurred())
		})

		It("cleans the directory", func() {
			s := session.New(tmpDir + "/./")
			dir, err := s.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(dir).To(Equal(tmpDir))
		})
	})

	Describe("Clone", func() {
		It("copies the environment", func() {
			s := session.New(tmpDir)
			s.Setenv("A", "1")

			c := s.Clone()
			c.Setenv("A", "2")
			Expect(s.Getenv("A")).To(Equal("1"))
		})
	})

	Describe("DirExists", func() {
		It("distinguishes directories from files and missing paths", func() {
			file := filepath.Join(tmpDir, "file")
			Expect(os.WriteFile(file, []byte("x"), 0o644)).To(Succeed())

			Expect(session.DirExists(tmpDir)).To(BeTrue())
			Expect(session.DirExists(file)).To(BeFalse())
			Expect(session.DirExists(filepath.Join(tmpDir, "missing"))).To(BeFalse())
			Expect(session.DirExists("")).To(BeFalse())
		})
	})
})
