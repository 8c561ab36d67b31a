package shell_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/jumpmap/pkg/shell"
)

var _ = Describe("Supported", func() {
	It("lists the shells in order", func() {
		Expect(shell.Supported()).To(Equal([]string{"bash", "fish", "powershell", "zsh"}))
	})

	It("returns a copy", func() {
		s := shell.Supported()
		s[0] = "csh"
		Expect(shell.Supported()[0]).To(Equal("bash"))
	})
})

var _ = Describe("Normalize", func() {
	DescribeTable("shell names",
		func(in, want string, ok bool) {
			got, valid := shell.Normalize(in)
			Expect(valid).To(Equal(ok))
			if ok {
				Expect(got).To(Equal(want))
			}
		},
		Entry("bash", "bash", "bash", true),
		Entry("upper case", "ZSH", "zsh", true),
		Entry("pwsh", "pwsh", "powershell", true),
		Entry("padded", " fish ", "fish", true),
		Entry("unknown", "tcsh", "", false),
	)
})

var _ = Describe("Script", func() {
	DescribeTable("registers completion for all three commands",
		func(sh string, registration string) {
			script, err := shell.Script(sh, "jumpmap")
			Expect(err).NotTo(HaveOccurred())
			Expect(script).To(ContainSubstring(registration))
			Expect(script).To(ContainSubstring("jumpmap complete"))
			Expect(script).To(ContainSubstring("jumpmap jump"))
			Expect(script).To(ContainSubstring("jumpmap setjump"))
			Expect(script).To(ContainSubstring("jumpmap deljump"))
		},
		Entry("bash", "bash", "complete -F _jumpmap_complete jump setjump deljump"),
		Entry("zsh", "zsh", "compdef _jumpmap_complete jump setjump deljump"),
		Entry("fish", "fish", "for cmd in jump setjump deljump"),
		Entry("powershell", "powershell", "Register-ArgumentCompleter -CommandName jump, setjump, deljump"),
	)

	It("changes directory into the printed path", func() {
		bash, err := shell.Script("bash", "jumpmap")
		Expect(err).NotTo(HaveOccurred())
		Expect(bash).To(ContainSubstring(`builtin cd -- "$dir"`))

		ps, err := shell.Script("pwsh", "jumpmap")
		Expect(err).NotTo(HaveOccurred())
		Expect(ps).To(ContainSubstring("Set-Location -LiteralPath $dir"))
	})

	It("defaults the binary name", func() {
		script, err := shell.Script("zsh", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(ContainSubstring("command jumpmap jump"))
	})

	It("quotes binaries with spaces", func() {
		script, err := shell.Script("bash", "/opt/my tools/jumpmap")
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(ContainSubstring("command '/opt/my tools/jumpmap' jump"))

		ps, err := shell.Script("powershell", "C:\\Program Files\\it's\\jumpmap.exe")
		Expect(err).NotTo(HaveOccurred())
		Expect(ps).To(ContainSubstring(`& 'C:\Program Files\it''s\jumpmap.exe' jump`))
	})

	It("leaves plain paths unquoted", func() {
		script, err := shell.Script("fish", "/usr/local/bin/jumpmap")
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(ContainSubstring("command /usr/local/bin/jumpmap jump"))
	})

	It("rejects unknown shells", func() {
		_, err := shell.Script("tcsh", "jumpmap")
		Expect(err).To(MatchError(ContainSubstring(`unsupported shell "tcsh"`)))
		Expect(err).To(MatchError(ContainSubstring("bash, fish, powershell, zsh")))
	})
})

var _ = Describe("Guide", func() {
	It("mentions every shell and the store path", func() {
		guide, err := shell.Guide("jumpmap", "/home/me/.jumpmap.json")
		Expect(err).NotTo(HaveOccurred())
		for _, sh := range shell.Supported() {
			Expect(guide).To(ContainSubstring("jumpmap init " + sh))
		}
		Expect(guide).To(ContainSubstring("/home/me/.jumpmap.json"))
	})
})
