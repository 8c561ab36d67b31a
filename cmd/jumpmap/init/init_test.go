package initcmder_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
	initcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/init"
	testutils "github.com/papercomputeco/jumpmap/pkg/utils/test"
)

var _ = Describe("NewInitCmd", func() {
	var out *bytes.Buffer

	execute := func(args ...string) error {
		h := testutils.NewHarness(nil, "/")
		cmd := initcmder.NewInitCmd()
		cmd.SetContext(deps.WithDependencies(context.Background(), h.Deps))
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("prints the bash integration", func() {
		Expect(execute("bash")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("complete -F _jumpmap_complete jump setjump deljump"))
		Expect(out.String()).To(ContainSubstring("command jumpmap complete"))
	})

	It("uses --bin for the wrapped command", func() {
		Expect(execute("zsh", "--bin", "/opt/bin/jm")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("command /opt/bin/jm jump"))
	})

	It("rejects unsupported shells", func() {
		Expect(execute("tcsh")).To(MatchError(ContainSubstring("unsupported shell")))
	})

	It("offers supported shells for completion", func() {
		Expect(initcmder.NewInitCmd().ValidArgs).To(ConsistOf("bash", "fish", "powershell", "zsh"))
	})

	It("shows the setup guide without a shell", func() {
		Expect(execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("init fish | source"))
		Expect(out.String()).To(ContainSubstring("memory"))
	})
})
