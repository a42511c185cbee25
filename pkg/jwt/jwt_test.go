package jwt_test

import (
	"time"

	jwtService "calendr/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwtService.JWTService
		secret  []byte
	)

	BeforeEach(func() {
		secret = []byte("a-test-secret-of-at-least-32-bytes!")
		service = jwtService.NewJWTService(secret)
	})

	AfterEach(func() {
		jwtService.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a HS512 token carrying the identity claims", func() {
			now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			jwtService.TimeNow = func() time.Time { return now }

			token := service.Generate(jwtService.TokenInfo{
				UserName:   "alice",
				Subject:    "42",
				Expiration: 7 * 24 * time.Hour,
			})

			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			claims := token.Claims.(jwt.MapClaims)
			Expect(claims["sub"]).To(Equal("42"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["iat"]).To(Equal(now.Unix()))
			Expect(claims["exp"]).To(Equal(now.Add(7 * 24 * time.Hour).Unix()))

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			token := service.Generate(jwtService.TokenInfo{
				UserName:   "alice",
				Subject:    "42",
				Expiration: time.Hour,
			})

			var err error
			signed, err = service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is signed with the right secret", func() {
			It("should return the claims", func() {
				claims, err := service.Validate(signed)

				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("42"))
				Expect(claims["username"]).To(Equal("alice"))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return token not valid error", func() {
				other := jwtService.NewJWTService([]byte("another-secret-also-32-bytes-long!!"))

				claims, err := other.Validate(signed)

				Expect(err).To(MatchError(jwtService.ErrTokenNotValid))
				Expect(claims).To(BeNil())
			})
		})

		When("the token is garbage", func() {
			It("should return token not valid error", func() {
				claims, err := service.Validate("not.a.token")

				Expect(err).To(MatchError(jwtService.ErrTokenNotValid))
				Expect(claims).To(BeNil())
			})
		})

		When("the token has expired", func() {
			It("should return token expired error", func() {
				jwtService.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
				token := service.Generate(jwtService.TokenInfo{
					UserName:   "alice",
					Subject:    "42",
					Expiration: time.Hour,
				})
				expired, err := service.Sign(token)
				Expect(err).NotTo(HaveOccurred())

				jwtService.TimeNow = time.Now
				claims, err := service.Validate(expired)

				Expect(err).To(HaveOccurred())
				Expect(claims).To(BeNil())
			})
		})
	})
})
