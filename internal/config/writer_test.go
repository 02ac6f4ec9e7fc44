package config_test

import (
	"os"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/mcdirs/internal/config"
	"github.com/smykla-skalski/mcdirs/internal/xdg"
	pkgConfig "github.com/smykla-skalski/mcdirs/pkg/config"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
)

var _ = Describe("Writer", func() {
	var (
		homeDir string
		writer  *config.Writer
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		writer = config.NewWriterWithResolver(xdg.ResolverFor(homeDir))
	})

	It("should write the default config with secure permissions", func() {
		path, err := writer.WriteGlobal(config.DefaultConfig(), false)

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(writer.GlobalConfigPath()))

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(config.ConfigFileMode)))

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`level = 'INFO'`))
		Expect(string(data)).To(ContainSubstring(`concurrency = 4`))
	})

	It("should refuse to overwrite without force", func() {
		_, err := writer.WriteGlobal(config.DefaultConfig(), false)
		Expect(err).NotTo(HaveOccurred())

		_, err = writer.WriteGlobal(config.DefaultConfig(), false)

		Expect(errors.Is(err, config.ErrConfigExists)).To(BeTrue())
		Expect(errors.FlattenHints(err)).To(ContainSubstring("--force"))
	})

	It("should overwrite with force", func() {
		_, err := writer.WriteGlobal(config.DefaultConfig(), false)
		Expect(err).NotTo(HaveOccurred())

		cfg := config.DefaultConfig()
		cfg.Minecraft.Root = "/srv/.minecraft"

		_, err = writer.WriteGlobal(cfg, true)
		Expect(err).NotTo(HaveOccurred())

		loaded, err := config.NewKoanfLoaderWithResolver(xdg.ResolverFor(homeDir)).Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.GetRoot()).To(Equal("/srv/.minecraft"))
	})

	It("should round-trip through the loader", func() {
		cfg := &pkgConfig.Config{
			Log: &pkgConfig.LogConfig{Level: logger.LevelError},
		}

		Expect(writer.WriteFile(writer.GlobalConfigPath(), cfg)).To(Succeed())

		loaded, err := config.NewKoanfLoaderWithResolver(xdg.ResolverFor(homeDir)).Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.GetLogLevel()).To(Equal(logger.LevelError))
	})

	It("should reject a nil config", func() {
		Expect(errors.Is(writer.WriteFile(writer.GlobalConfigPath(), nil), config.ErrInvalidConfig)).To(BeTrue())
	})
})
