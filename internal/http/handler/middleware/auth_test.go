package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"calendr/internal/core"
	"calendr/internal/http/handler/middleware"
	"calendr/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		authMiddleware *middleware.AuthMiddleware
		fakeAuthorizer *fake.Authorizer
		recorder       *httptest.ResponseRecorder
		request        *http.Request
		nextCalled     bool
		seenIdentity   core.Identity
		protected      http.Handler
	)

	BeforeEach(func() {
		fakeAuthorizer = new(fake.Authorizer)
		authMiddleware = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeAuthorizer)
		recorder = httptest.NewRecorder()
		request = httptest.NewRequest(http.MethodGet, "/api/events", nil)
		nextCalled = false
		seenIdentity = core.Identity{}

		protected = authMiddleware.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seenIdentity, _ = middleware.IdentityFromContext(r.Context())
		}))
	})

	JustBeforeEach(func() {
		protected.ServeHTTP(recorder, request)
	})

	When("the token is valid", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Bearer some.jwt.token")
			fakeAuthorizer.AuthorizeReturns(core.Identity{UserID: 42, Username: "alice"}, nil)
		})

		It("should attach the identity and call the next handler", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(seenIdentity).To(Equal(core.Identity{UserID: 42, Username: "alice"}))

			Expect(fakeAuthorizer.AuthorizeCallCount()).To(Equal(1))
			Expect(fakeAuthorizer.AuthorizeArgsForCall(0)).To(Equal("some.jwt.token"))
		})
	})

	When("the authorization header is missing", func() {
		It("should respond 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(errorBody(recorder)).To(Equal("Access token required"))
			Expect(fakeAuthorizer.AuthorizeCallCount()).To(Equal(0))
		})
	})

	When("the authorization header is not a bearer token", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})

		It("should respond 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(errorBody(recorder)).To(Equal("Access token required"))
		})
	})

	When("the token fails verification", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Bearer bad.token")
			fakeAuthorizer.AuthorizeReturns(core.Identity{}, errors.New("token is not valid"))
		})

		It("should respond 403", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(recorder.Code).To(Equal(http.StatusForbidden))
			Expect(errorBody(recorder)).To(Equal("Invalid token"))
		})
	})
})

func errorBody(recorder *httptest.ResponseRecorder) string {
	var body map[string]string
	Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
	return body["error"]
}
