package sensors_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/fitness-tracker/internal/sensors"
)

const packagesYAML = `
packages:
  - code: SWM
    data: [720, 1, 80, 25, 40]
  - code: RUN
    data: [15000, 1, 75]
`

var _ = Describe("ParseYAML", func() {
	It("decodes a YAML packages document", func() {
		pkgs, err := sensors.ParseYAML([]byte(packagesYAML))
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(HaveLen(2))
		Expect(pkgs[0].Code).To(Equal("SWM"))
		Expect(pkgs[0].Fields).To(Equal([]any{720.0, 1.0, 80.0, 25.0, 40.0}))
		Expect(pkgs[1].Fields).To(HaveLen(3))
	})

	It("decodes JSON", func() {
		pkgs, err := sensors.ParseYAML([]byte(`{"packages":[{"code":"WLK","data":[9000,1,75,180]}]}`))
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(HaveLen(1))
		Expect(pkgs[0].Fields).To(Equal([]any{9000.0, 1.0, 75.0, 180.0}))
	})

	It("fills an empty field list when data is absent", func() {
		pkgs, err := sensors.ParseYAML([]byte("packages:\n  - code: RUN\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs[0].Fields).To(BeEmpty())
		Expect(pkgs[0].Fields).ToNot(BeNil())
	})

	It("rejects a package without a code", func() {
		_, err := sensors.ParseYAML([]byte("packages:\n  - data: [1, 2]\n"))
		Expect(err).To(MatchError(ContainSubstring("package 0: missing code")))
	})

	It("rejects unknown keys", func() {
		_, err := sensors.ParseYAML([]byte("packages:\n  - code: RUN\n    values: [1]\n"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("LoadFile", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name string, content []byte) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, content, 0o600)).To(Succeed())
		return path
	}

	It("loads a YAML file", func() {
		pkgs, err := sensors.LoadFile(write("packages.yaml", []byte(packagesYAML)), "packages")
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(HaveLen(2))
	})

	It("loads a workbook", func() {
		content := createWorkbook("training", [][]any{{"RUN", 15000, 1, 75}})
		pkgs, err := sensors.LoadFile(write("packages.xlsx", content), "training")
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(HaveLen(1))
		Expect(pkgs[0].Code).To(Equal("RUN"))
	})

	It("rejects a workbook extension on other content", func() {
		_, err := sensors.LoadFile(write("packages.xlsx", []byte(packagesYAML)), "packages")
		Expect(err).To(MatchError(ContainSubstring("not a valid xlsx workbook")))
	})

	It("rejects an unknown extension", func() {
		_, err := sensors.LoadFile(write("packages.txt", []byte(packagesYAML)), "packages")
		Expect(err).To(MatchError(ContainSubstring(`unsupported file extension ".txt"`)))
	})

	It("fails on a missing file", func() {
		_, err := sensors.LoadFile(filepath.Join(dir, "missing.yaml"), "packages")
		Expect(err).To(HaveOccurred())
	})
})
