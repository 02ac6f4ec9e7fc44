package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/mcdirs/internal/config"
	pkgConfig "github.com/smykla-skalski/mcdirs/pkg/config"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
)

var _ = Describe("Validator", func() {
	var validator *config.Validator

	BeforeEach(func() {
		validator = config.NewValidator()
	})

	It("should accept the default config", func() {
		Expect(validator.Validate(config.DefaultConfig())).To(Succeed())
	})

	It("should reject a nil config", func() {
		Expect(errors.Is(validator.Validate(nil), config.ErrInvalidConfig)).To(BeTrue())
	})

	It("should report every failure", func() {
		cfg := &pkgConfig.Config{
			Log:   &pkgConfig.LogConfig{Level: logger.Level(42)},
			Check: &pkgConfig.CheckConfig{Concurrency: -3},
		}

		err := validator.Validate(cfg)

		Expect(errors.Is(err, config.ErrInvalidConfig)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("validation failed with 2 error(s)"))
		Expect(err.Error()).To(ContainSubstring("invalid log level"))
		Expect(err.Error()).To(ContainSubstring("got -3"))
	})
})
