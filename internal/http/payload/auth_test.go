package payload_test

import (
	"calendr/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegisterRequest", func() {
	var request payload.RegisterRequest

	BeforeEach(func() {
		request = payload.RegisterRequest{
			Username: "alice",
			Password: "secret-pass",
		}
	})

	When("the payload is complete", func() {
		It("should validate", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("should convert to credentials", func() {
			creds := request.ToCredentials()
			Expect(creds.Username).To(Equal("alice"))
			Expect(creds.Password).To(Equal("secret-pass"))
		})
	})

	When("the username is missing", func() {
		It("should fail validation", func() {
			request.Username = ""

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Username and password required"))
		})
	})

	When("the password is missing", func() {
		It("should fail validation", func() {
			request.Password = ""

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Username and password required"))
		})
	})

	When("the password is shorter than six characters", func() {
		It("should fail validation", func() {
			request.Password = "12345"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Password must be at least 6 characters"))
		})
	})
})

var _ = Describe("LoginRequest", func() {
	var request payload.LoginRequest

	BeforeEach(func() {
		request = payload.LoginRequest{
			Username: "alice",
			Password: "x",
		}
	})

	When("the payload is complete", func() {
		It("should validate regardless of password length", func() {
			Expect(request.Validate()).To(Succeed())
		})
	})

	When("a field is missing", func() {
		It("should fail validation", func() {
			request.Password = ""

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Username and password required"))
		})
	})
})
