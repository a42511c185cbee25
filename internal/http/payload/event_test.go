package payload_test

import (
	"calendr/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CreateEventRequest", func() {
	var request payload.CreateEventRequest

	BeforeEach(func() {
		request = payload.CreateEventRequest{
			Date:      "2024-05-01",
			Event:     "Lunch",
			StartTime: "12:00",
		}
	})

	When("the payload is complete", func() {
		It("should validate without an end time", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("should validate with an end time after the start", func() {
			request.EndTime = "13:30"
			Expect(request.Validate()).To(Succeed())
		})
	})

	When("a required field is missing", func() {
		It("should fail without a date", func() {
			request.Date = ""

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Date, event and start time are required"))
		})

		It("should fail without a label", func() {
			request.Event = ""

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Date, event and start time are required"))
		})

		It("should fail without a start time", func() {
			request.StartTime = ""

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Date, event and start time are required"))
		})
	})

	When("the label is too long", func() {
		It("should reject seventeen characters", func() {
			request.Event = "12345678901234567"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Event must be 16 characters or less"))
		})

		It("should accept exactly sixteen characters", func() {
			request.Event = "1234567890123456"

			Expect(request.Validate()).To(Succeed())
		})
	})

	When("a time is malformed", func() {
		It("should reject a start time without minutes", func() {
			request.StartTime = "12"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Invalid time format"))
		})

		It("should reject an hour past the clock", func() {
			request.StartTime = "24:00"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Invalid time format"))
		})

		It("should accept a single-digit hour", func() {
			request.StartTime = "9:05"

			Expect(request.Validate()).To(Succeed())
		})
	})

	When("the end time does not follow the start time", func() {
		It("should reject an earlier end", func() {
			request.EndTime = "11:00"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("End time must be later than start time"))
		})

		It("should reject an equal end", func() {
			request.EndTime = "12:00"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("End time must be later than start time"))
		})
	})

	When("the date is malformed", func() {
		It("should fail validation", func() {
			request.Date = "01-05-2024"

			err := request.Validate()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Invalid date format"))
		})
	})

	Describe("ToNewEvent", func() {
		It("should leave the end time nil when absent", func() {
			event := request.ToNewEvent()

			Expect(event.Date).To(Equal("2024-05-01"))
			Expect(event.Label).To(Equal("Lunch"))
			Expect(event.StartTime).To(Equal("12:00"))
			Expect(event.EndTime).To(BeNil())
		})

		It("should carry the end time when present", func() {
			request.EndTime = "13:30"

			event := request.ToNewEvent()

			Expect(event.EndTime).To(HaveValue(Equal("13:30")))
		})
	})
})
