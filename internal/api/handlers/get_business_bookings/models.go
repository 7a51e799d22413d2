package get_business_bookings

import (
	"net/url"
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/bookings/models"
	"github.com/mojtermin/MT-BookingPlatform/pkg/ptr"
)

// ToServiceRequest собирает запрос сервиса из query параметров HTTP запроса
func ToServiceRequest(userID, businessID string, query url.Values) (*models.GetBusinessBookingsRequest, error) {
	req := &models.GetBusinessBookingsRequest{
		UserID:     userID,
		BusinessID: businessID,
	}

	if s := query.Get("staffId"); s != "" {
		req.StaffID = ptr.Ptr(s)
	}

	if s := query.Get("startDate"); s != "" {
		startDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if s := query.Get("endDate"); s != "" {
		endDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if s := query.Get("status"); s != "" {
		req.Status = ptr.Ptr(s)
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
