package core_test

import (
	"context"
	"errors"
	"time"

	"calendr/internal/core"
	"calendr/internal/core/fake"
	"calendr/internal/repository"
	tokenIssuer "calendr/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Calendar", func() {
	var (
		calendar      *core.Calendar
		fakeRepo      *fake.Repository
		fakeJWTIssuer *fake.TokenIssuer
		ctx           context.Context
		fakeErr       error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWTIssuer = new(fake.TokenIssuer)
		calendar = core.NewCalendar(zap.NewNop().Sugar(), fakeRepo, fakeJWTIssuer)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			session core.Session
			err     error
			creds   core.Credentials
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice", Password: "secret-pass"}
		})

		JustBeforeEach(func() {
			session, err = calendar.Register(ctx, creds)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{ID: 42, Username: "alice"}, nil)
				fakeJWTIssuer.SignReturns("signed.jwt.token", nil)
			})

			It("should store a bcrypt hash, not the password", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, hash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(hash).NotTo(Equal("secret-pass"))
				Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret-pass"))).To(Succeed())
			})

			It("should issue a week-long session for the new user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.jwt.token"))
				Expect(session.Username).To(Equal("alice"))

				Expect(fakeJWTIssuer.GenerateCallCount()).To(Equal(1))
				info := fakeJWTIssuer.GenerateArgsForCall(0)
				Expect(info).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "alice",
					Subject:    "42",
					Expiration: 7 * 24 * time.Hour,
				}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUsernameTaken)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("creating the user fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{ID: 42, Username: "alice"}, nil)
				fakeJWTIssuer.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			session      core.Session
			err          error
			creds        core.Credentials
			passwordHash []byte
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice", Password: "secret-pass"}

			var hashErr error
			passwordHash, hashErr = bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
		})

		JustBeforeEach(func() {
			session, err = calendar.Login(ctx, creds)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeRepo.FindUserByNameReturns(repository.User{
					ID:           42,
					Username:     "alice",
					PasswordHash: string(passwordHash),
				}, nil)
				fakeJWTIssuer.SignReturns("signed.jwt.token", nil)
			})

			It("should issue a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.jwt.token"))
				Expect(session.Username).To(Equal("alice"))

				Expect(fakeRepo.FindUserByNameCallCount()).To(Equal(1))
				_, username := fakeRepo.FindUserByNameArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.FindUserByNameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				creds.Password = "wrong-pass"
				fakeRepo.FindUserByNameReturns(repository.User{
					ID:           42,
					Username:     "alice",
					PasswordHash: string(passwordHash),
				}, nil)
			})

			It("should return the same error as for an unknown user", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeJWTIssuer.SignCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.FindUserByNameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		var (
			identity core.Identity
			err      error
		)

		JustBeforeEach(func() {
			identity, err = calendar.Authorize("some.jwt.token")
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWTIssuer.ValidateReturns(jwt.MapClaims{
					"sub":      "42",
					"username": "alice",
				}, nil)
			})

			It("should decode the identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(core.Identity{UserID: 42, Username: "alice"}))

				Expect(fakeJWTIssuer.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWTIssuer.ValidateArgsForCall(0)).To(Equal("some.jwt.token"))
			})
		})

		When("the token fails validation", func() {
			BeforeEach(func() {
				fakeJWTIssuer.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the subject claim is missing", func() {
			BeforeEach(func() {
				fakeJWTIssuer.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("subject claim missing"))
			})
		})

		When("the subject claim is not numeric", func() {
			BeforeEach(func() {
				fakeJWTIssuer.ValidateReturns(jwt.MapClaims{"sub": "not-a-number"}, nil)
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("ListEvents", func() {
		var (
			events []core.EventRecord
			err    error
		)

		JustBeforeEach(func() {
			events, err = calendar.ListEvents(ctx, 42)
		})

		When("the repository returns events", func() {
			var end string

			BeforeEach(func() {
				end = "13:00"
				fakeRepo.ListUserEventsReturns([]repository.Event{
					{ID: 1, UserID: 42, Date: "2024-05-01", Label: "Lunch", StartTime: "12:00", EndTime: &end},
					{ID: 2, UserID: 42, Date: "2024-05-02", Label: "Gym", StartTime: "18:30"},
				}, nil)
			})

			It("should map them to records in order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(events).To(HaveLen(2))
				Expect(events[0].ID).To(Equal(uint(1)))
				Expect(events[0].Label).To(Equal("Lunch"))
				Expect(events[0].EndTime).To(HaveValue(Equal("13:00")))
				Expect(events[1].EndTime).To(BeNil())

				_, userID := fakeRepo.ListUserEventsArgsForCall(0)
				Expect(userID).To(Equal(uint(42)))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListUserEventsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateEvent", func() {
		var (
			record   core.EventRecord
			err      error
			newEvent core.NewEvent
		)

		BeforeEach(func() {
			newEvent = core.NewEvent{
				Date:      "2024-05-01",
				Label:     "Lunch",
				StartTime: "12:00",
			}
		})

		JustBeforeEach(func() {
			record, err = calendar.CreateEvent(ctx, 42, newEvent)
		})

		When("the repository accepts the event", func() {
			BeforeEach(func() {
				fakeRepo.CreateEventStub = func(ctx context.Context, event repository.Event) (repository.Event, error) {
					event.ID = 9
					return event, nil
				}
			})

			It("should attach the owner and return the stored record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(9)))
				Expect(record.UserID).To(Equal(uint(42)))
				Expect(record.Label).To(Equal("Lunch"))

				_, stored := fakeRepo.CreateEventArgsForCall(0)
				Expect(stored.UserID).To(Equal(uint(42)))
				Expect(stored.Date).To(Equal("2024-05-01"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateEventReturns(repository.Event{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteEvent", func() {
		var err error

		JustBeforeEach(func() {
			err = calendar.DeleteEvent(ctx, 42, 9)
		})

		When("the event is owned and deleted", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserEventReturns(true, nil)
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())

				_, userID, eventID := fakeRepo.DeleteUserEventArgsForCall(0)
				Expect(userID).To(Equal(uint(42)))
				Expect(eventID).To(Equal(uint(9)))
			})
		})

		When("no owned event matches", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserEventReturns(false, nil)
			})

			It("should return event not found error", func() {
				Expect(err).To(MatchError(core.ErrEventNotFound))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserEventReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
