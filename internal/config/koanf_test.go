package config_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/mcdirs/internal/config"
	"github.com/smykla-skalski/mcdirs/internal/xdg"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
)

// writeConfig writes content to path with the given mode.
func writeConfig(path, content string, mode os.FileMode) {
	GinkgoHelper()

	Expect(os.MkdirAll(filepath.Dir(path), 0o700)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), mode)).To(Succeed())
	Expect(os.Chmod(path, mode)).To(Succeed())
}

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		loader  *config.KoanfLoader
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		loader = config.NewKoanfLoaderWithResolver(xdg.ResolverFor(homeDir))

		for _, key := range []string{
			"MCDIRS_MINECRAFT_ROOT",
			"MCDIRS_MINECRAFT_PROFILES",
			"MCDIRS_LOG_LEVEL",
			"MCDIRS_LOG_FILE",
			"MCDIRS_CHECK_CONCURRENCY",
		} {
			GinkgoT().Setenv(key, "")
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	Context("without any sources", func() {
		It("should return defaults", func() {
			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRoot()).To(BeEmpty())
			Expect(cfg.GetLogLevel()).To(Equal(logger.LevelInfo))
			Expect(cfg.GetCheckConcurrency()).To(Equal(4))
			Expect(loader.HasGlobalConfig()).To(BeFalse())
		})
	})

	Context("with a global config file", func() {
		BeforeEach(func() {
			writeConfig(loader.GlobalConfigPath(), `
[minecraft]
root = "/games/.minecraft"

[log]
level = "debug"

[check]
concurrency = 2
`, 0o600)
		})

		It("should read the file", func() {
			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(loader.HasGlobalConfig()).To(BeTrue())
			Expect(cfg.GetRoot()).To(Equal("/games/.minecraft"))
			Expect(cfg.GetLogLevel()).To(Equal(logger.LevelDebug))
			Expect(cfg.GetCheckConcurrency()).To(Equal(2))
		})

		It("should let an explicit file override it", func() {
			explicit := filepath.Join(homeDir, "other.toml")
			writeConfig(explicit, "[minecraft]\nroot = \"/explicit/.minecraft\"\n", 0o600)

			cfg, err := loader.WithConfigFile(explicit).Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRoot()).To(Equal("/explicit/.minecraft"))
			Expect(cfg.GetLogLevel()).To(Equal(logger.LevelDebug))
		})

		It("should let env vars override files", func() {
			GinkgoT().Setenv("MCDIRS_MINECRAFT_ROOT", "/env/.minecraft")
			GinkgoT().Setenv("MCDIRS_CHECK_CONCURRENCY", "8")

			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRoot()).To(Equal("/env/.minecraft"))
			Expect(cfg.GetCheckConcurrency()).To(Equal(8))
		})

		It("should let flags override env vars", func() {
			GinkgoT().Setenv("MCDIRS_MINECRAFT_ROOT", "/env/.minecraft")

			cfg, err := loader.Load(map[string]any{
				"minecraft.root": "/flag/.minecraft",
				"log.level":      "ERROR",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRoot()).To(Equal("/flag/.minecraft"))
			Expect(cfg.GetLogLevel()).To(Equal(logger.LevelError))
		})
	})

	It("should keep UNC roots verbatim", func() {
		cfg, err := loader.Load(map[string]any{"minecraft.root": `\\server\share\.minecraft`})

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetRoot()).To(Equal(`\\server\share\.minecraft`))
	})

	It("should expand ~ in paths", func() {
		home, err := os.UserHomeDir()
		Expect(err).NotTo(HaveOccurred())

		cfg, err := loader.Load(map[string]any{"minecraft.profiles": "~/profiles.json"})

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetProfilesFile("/ignored")).To(Equal(filepath.Join(home, "profiles.json")))
	})

	It("should reject world-writable config files", func() {
		writeConfig(loader.GlobalConfigPath(), "[log]\nlevel = \"INFO\"\n", 0o666)

		_, err := loader.Load(nil)

		Expect(errors.Is(err, config.ErrInvalidPermissions)).To(BeTrue())
	})

	It("should fail when the explicit file is missing", func() {
		_, err := loader.WithConfigFile(filepath.Join(homeDir, "missing.toml")).Load(nil)

		Expect(errors.Is(err, config.ErrConfigNotFound)).To(BeTrue())
	})

	It("should fail on an unknown log level", func() {
		_, err := loader.Load(map[string]any{"log.level": "verbose"})

		Expect(err).To(HaveOccurred())
	})

	It("should fail validation on negative concurrency", func() {
		_, err := loader.Load(map[string]any{"check.concurrency": -1})

		Expect(errors.Is(err, config.ErrInvalidConfig)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("check.concurrency must not be negative"))
	})
})
