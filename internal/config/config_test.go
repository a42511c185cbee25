package config_test

import (
	"os"

	"calendr/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// unset clears a variable for the current spec while keeping the
// restore-on-cleanup behavior of Setenv.
func unset(key string) {
	GinkgoT().Setenv(key, "")
	os.Unsetenv(key)
}

var _ = Describe("NewApp", func() {
	var secret string

	BeforeEach(func() {
		secret = "a-test-secret-of-at-least-32-bytes!"

		GinkgoT().Setenv("API_PORT", "8080")
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://localhost:5432/calendr")
		GinkgoT().Setenv("JWT_SECRET", secret)
		GinkgoT().Setenv("PUBLIC_DIR", "webroot")
	})

	When("all variables are set", func() {
		It("should load the configuration", func() {
			app, err := config.NewApp()

			Expect(err).NotTo(HaveOccurred())
			Expect(app).To(Equal(config.App{
				Port:            "8080",
				DBConnectionURL: "postgres://localhost:5432/calendr",
				JWTSecret:       secret,
				PublicDir:       "webroot",
			}))
		})
	})

	When("the public directory is not set", func() {
		It("should fall back to the default", func() {
			unset("PUBLIC_DIR")

			app, err := config.NewApp()

			Expect(err).NotTo(HaveOccurred())
			Expect(app.PublicDir).To(Equal("public"))
		})
	})

	When("a required variable is missing", func() {
		It("should fail without a port", func() {
			unset("API_PORT")

			_, err := config.NewApp()

			Expect(err).To(MatchError(ContainSubstring("API_PORT")))
		})

		It("should fail without a database url", func() {
			unset("DB_CONNECTION_URL")

			_, err := config.NewApp()

			Expect(err).To(MatchError(ContainSubstring("DB_CONNECTION_URL")))
		})

		It("should fail without a signing secret", func() {
			unset("JWT_SECRET")

			_, err := config.NewApp()

			Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
		})
	})

	When("the signing secret is too short", func() {
		It("should refuse to start", func() {
			GinkgoT().Setenv("JWT_SECRET", "short-secret")

			_, err := config.NewApp()

			Expect(err).To(MatchError(ContainSubstring("32 bytes")))
		})
	})
})
