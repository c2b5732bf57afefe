package furyci_test

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	furyci "github.com/fury-gl/fury-ci"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testExitCode(t *testing.T, context spec.G, it spec.S) {
	var Expect = NewWithT(t).Expect

	it("is zero without an error", func() {
		Expect(furyci.ExitCode(nil)).To(Equal(0))
	})

	it("passes through the exit status of a process", func() {
		err := exec.Command("sh", "-c", "exit 3").Run()
		Expect(err).To(HaveOccurred())

		Expect(furyci.ExitCode(fmt.Errorf("pip install failed:\nerror: %w", err))).To(Equal(3))
	})

	it("is one when the process was killed by a signal", func() {
		err := exec.Command("sh", "-c", "kill -9 $$").Run()
		Expect(err).To(HaveOccurred())

		Expect(furyci.ExitCode(err)).To(Equal(1))
	})

	it("is 127 when the executable is not on the PATH", func() {
		_, err := exec.LookPath("some-missing-executable")
		Expect(err).To(HaveOccurred())

		Expect(furyci.ExitCode(fmt.Errorf("pytest failed:\nerror: %w", err))).To(Equal(127))
	})

	it("is one for any other error", func() {
		Expect(furyci.ExitCode(errors.New("failed to get working directory"))).To(Equal(1))
	})
}
