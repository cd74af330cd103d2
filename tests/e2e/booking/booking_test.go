//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"cape-tours-api/internal/handler/dto/request"
	"cape-tours-api/internal/handler/dto/response"
	"cape-tours-api/internal/handler/httperr"
	"cape-tours-api/tests/common/authtest"
	"cape-tours-api/tests/common/builder"
	"cape-tours-api/tests/common/dbtest"
	"cape-tours-api/tests/common/httptest"
	"cape-tours-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL       = "/api/bookings"
	availabilityURL   = "/api/availability"
	driverBookingsURL = "/api/drivers/%s/bookings"
	blocksURL         = "/api/drivers/%s/unavailability"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func tourDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func (s *BookingSuite) createRequest(date string) request.CreateBookingRequest {
	return builder.NewBookingBuilder().
		WithTourID(dbtest.TourPeninsulaID).
		WithDriverID(dbtest.DriverSiphoID).
		WithDate(date).
		BuildCreateRequestDTO()
}

func (s *BookingSuite) createBooking(t *testing.T, req request.CreateBookingRequest) response.CreateBookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateBookingResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	return created
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: Anonymous booking is created, priced, and queues an email", func() {
		t := s.T()
		date := tourDate(14)

		created := s.createBooking(t, s.createRequest(date))

		require.Empty(t, created.RejectedDriverIDs)
		require.True(t, created.EmailQueued)

		var jobs int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE topic = 'booking_created' AND status = 'queued'").Scan(&jobs)
		require.NoError(t, err)
		require.Equal(t, 1, jobs)

		// Admin can read the booking back
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.Booking.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, created.Booking.ID, fetched.ID)

		phone := "+27821234567"
		expected := &response.BookingResponse{
			TourID:              dbtest.TourPeninsulaID,
			TourName:            "Cape Peninsula Day Tour",
			DriverID:            dbtest.DriverSiphoID,
			DriverName:          "Sipho M.",
			Date:                date,
			GroupSize:           4,
			CustomerName:        "Jane Traveller",
			CustomerEmail:       "jane@example.com",
			CustomerPhone:       &phone,
			PricePerPersonCents: 130000, // 4-person bracket
			TotalPriceCents:     520000,
			Status:              "pending",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "SpecialRequests", "CreatedAt", "UpdatedAt"),
		}

		if diff := cmp.Diff(expected, &fetched, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Second booking for the same driver and date conflicts", func() {
		t := s.T()
		date := tourDate(14)

		s.createBooking(t, s.createRequest(date))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(date), "")
		httptest.AssertErrorKind(t, w, http.StatusConflict, httperr.KindDriverAlreadyBooked)
	})

	s.Run("Normal case: Shortlist falls back to the second driver", func() {
		t := s.T()
		date := tourDate(14)

		s.createBooking(t, s.createRequest(date))

		req := s.createRequest(date)
		req.DriverIDs = []uuid.UUID{dbtest.DriverThandiID}

		created := s.createBooking(t, req)
		require.Equal(t, dbtest.DriverThandiID, created.Booking.DriverID)
		require.Equal(t, []uuid.UUID{dbtest.DriverSiphoID}, created.RejectedDriverIDs)
	})

	s.Run("Error case: Blocked driver cannot be booked", func() {
		t := s.T()
		date := tourDate(14)

		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)
		blockURL := fmt.Sprintf(blocksURL, dbtest.DriverSiphoID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blockURL,
			request.CreateBlockRequest{Date: date}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(date), "")
		httptest.AssertErrorKind(t, w, http.StatusConflict, httperr.KindDriverUnavailable)
	})

	s.Run("Error case: Unknown tour returns 404", func() {
		t := s.T()

		req := s.createRequest(tourDate(14))
		req.TourID = uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: Past date returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(tourDate(-1)), "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Normal case: Logged-in customer is linked to the booking", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", "member")
		token := authtest.LoginUser(t, s.Router, "customer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(tourDate(14)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		var linked uuid.UUID
		err := s.DB.QueryRow(context.Background(),
			"SELECT user_id FROM bookings WHERE id = $1", created.Booking.ID).Scan(&linked)
		require.NoError(t, err)
		require.Equal(t, userID, linked)
	})
}

// =============================================================================
// TestConcurrentCreate - Commit-time uniqueness guard under contention
// =============================================================================

func (s *BookingSuite) TestConcurrentCreate() {
	s.Run("Race: exactly one booking wins the slot", func() {
		t := s.T()
		date := tourDate(21)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(date), "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		var created, conflicted int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one attempt should win")
		require.Equal(t, attempts-1, conflicted)

		var holders int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE driver_id = $1 AND date = $2 AND status IN ('pending', 'confirmed')",
			dbtest.DriverSiphoID, date).Scan(&holders)
		require.NoError(t, err)
		require.Equal(t, 1, holders)
	})
}

// =============================================================================
// TestStatusTransitions - Booking lifecycle API tests
// =============================================================================

func (s *BookingSuite) transition(t *testing.T, token string, bookingID uuid.UUID, next string) *response.BookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+bookingID.String(),
		request.TransitionBookingRequest{Status: next}, token)
	if w.Code != http.StatusOK {
		t.Logf("transition to %s failed: %d %s", next, w.Code, w.Body.String())
		require.Equal(t, http.StatusOK, w.Code)
	}

	var view response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return &view
}

func (s *BookingSuite) TestStatusTransitions() {
	s.Run("Normal case: Assigned driver confirms then completes", func() {
		t := s.T()

		created := s.createBooking(t, s.createRequest(tourDate(14)))
		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)

		confirmed := s.transition(t, token, created.Booking.ID, "confirmed")
		require.Equal(t, "confirmed", confirmed.Status)

		completed := s.transition(t, token, created.Booking.ID, "completed")
		require.Equal(t, "completed", completed.Status)
	})

	s.Run("Normal case: Cancelling frees the slot for rebooking", func() {
		t := s.T()
		date := tourDate(14)

		created := s.createBooking(t, s.createRequest(date))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		cancelled := s.transition(t, token, created.Booking.ID, "cancelled")
		require.Equal(t, "cancelled", cancelled.Status)

		// Same driver, same date: the slot is free again
		rebooked := s.createBooking(t, s.createRequest(date))
		require.Equal(t, dbtest.DriverSiphoID, rebooked.Booking.DriverID)
	})

	s.Run("Error case: Completed booking is frozen", func() {
		t := s.T()

		created := s.createBooking(t, s.createRequest(tourDate(14)))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		s.transition(t, token, created.Booking.ID, "confirmed")
		s.transition(t, token, created.Booking.ID, "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.Booking.ID.String(),
			request.TransitionBookingRequest{Status: "cancelled"}, token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, httperr.KindInvalidTransition)
	})

	s.Run("Error case: Pending cannot skip to completed", func() {
		t := s.T()

		created := s.createBooking(t, s.createRequest(tourDate(14)))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.Booking.ID.String(),
			request.TransitionBookingRequest{Status: "completed"}, token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, httperr.KindInvalidTransition)
	})

	s.Run("Error case: Unrelated driver cannot transition the booking", func() {
		t := s.T()

		created := s.createBooking(t, s.createRequest(tourDate(14)))
		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "thandi@example.com", dbtest.DriverThandiID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.Booking.ID.String(),
			request.TransitionBookingRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAvailability - Availability lookup API tests
// =============================================================================

func (s *BookingSuite) availableDrivers(t *testing.T, date string) []*response.AvailableDriverResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		availabilityURL+"?date="+date+"&group_size=4", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.AvailabilityResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.Drivers
}

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: Booked and blocked drivers drop out", func() {
		t := s.T()
		date := tourDate(14)

		require.Len(t, s.availableDrivers(t, date), 2)

		s.createBooking(t, s.createRequest(date))
		remaining := s.availableDrivers(t, date)
		require.Len(t, remaining, 1)
		require.Equal(t, dbtest.DriverThandiID, remaining[0].ID)

		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "thandi@example.com", dbtest.DriverThandiID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(blocksURL, dbtest.DriverThandiID),
			request.CreateBlockRequest{Date: date}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		require.Empty(t, s.availableDrivers(t, date))
	})

	s.Run("Normal case: Cancelled bookings do not consume the slot", func() {
		t := s.T()
		date := tourDate(14)

		created := s.createBooking(t, s.createRequest(date))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")
		s.transition(t, token, created.Booking.ID, "cancelled")

		require.Len(t, s.availableDrivers(t, date), 2)
	})

	s.Run("Normal case: Inactive drivers never appear", func() {
		t := s.T()
		date := tourDate(14)

		dbtest.CreateTestDriver(t, s.DB, "Retired R.", false)
		require.Len(t, s.availableDrivers(t, date), 2)
	})

	s.Run("Error case: Missing date parameter", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestDriverCalendar - Driver blocks and bookings API tests
// =============================================================================

func (s *BookingSuite) TestDriverCalendar() {
	s.Run("Normal case: Driver creates, lists, and removes a block", func() {
		t := s.T()
		date := tourDate(10)

		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)
		url := fmt.Sprintf(blocksURL, dbtest.DriverSiphoID)

		reason := "vehicle service"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateBlockRequest{Date: date, Reason: &reason}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var block response.BlockResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &block))
		require.Equal(t, date, block.Date)
		require.NotNil(t, block.Reason)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var blocks []*response.BlockResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &blocks))
		require.Len(t, blocks, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url+"/"+date, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		blocks = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &blocks))
		require.Empty(t, blocks)
	})

	s.Run("Error case: Block conflicts with a confirmed booking", func() {
		t := s.T()
		date := tourDate(14)

		created := s.createBooking(t, s.createRequest(date))
		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)
		s.transition(t, token, created.Booking.ID, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(blocksURL, dbtest.DriverSiphoID),
			request.CreateBlockRequest{Date: date}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Duplicate block conflicts", func() {
		t := s.T()
		date := tourDate(10)

		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)
		url := fmt.Sprintf(blocksURL, dbtest.DriverSiphoID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CreateBlockRequest{Date: date}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CreateBlockRequest{Date: date}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Normal case: Driver lists their own bookings", func() {
		t := s.T()

		created := s.createBooking(t, s.createRequest(tourDate(14)))
		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(driverBookingsURL, dbtest.DriverSiphoID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []*response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, created.Booking.ID, items[0].ID)
	})

	s.Run("Error case: Driver cannot read another driver's bookings", func() {
		t := s.T()

		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "thandi@example.com", dbtest.DriverThandiID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(driverBookingsURL, dbtest.DriverSiphoID), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
