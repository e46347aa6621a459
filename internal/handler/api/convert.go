package api

import (
	"time"

	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/commands"
)

func toCreateReservationInput(req reqdto.CreateReservationRequest) (commands.CreateReservationInput, error) {
	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		OfferID:        req.OfferID,
		Date:           date,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Answers:        req.Answers,
		DiscountCodeID: req.DiscountCodeID,
		FinalPrice:     req.FinalPrice,
	}, nil
}

func toUpdateDetailsInput(req reqdto.UpdateDetailsRequest) (commands.UpdateDetailsInput, error) {
	var date *time.Time
	if req.Date != nil {
		d, err := reqdto.ParseDate(*req.Date)
		if err != nil {
			return commands.UpdateDetailsInput{}, err
		}
		date = &d
	}
	return commands.UpdateDetailsInput{
		Date:         date,
		TotalPrice:   req.TotalPrice,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
		NotifyClient: req.NotifyClient,
	}, nil
}

func toOfferInput(req reqdto.OfferRequest) commands.OfferInput {
	return commands.OfferInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		Questions:   req.Questions,
	}
}

// New codes are active unless the request says otherwise.
func toDiscountCodeInput(req reqdto.DiscountCodeRequest) commands.DiscountCodeInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return commands.DiscountCodeInput{
		Code:     req.Code,
		Type:     req.Type,
		Value:    req.Value,
		IsActive: active,
	}
}
