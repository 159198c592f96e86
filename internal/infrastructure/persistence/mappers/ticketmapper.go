package mappers

import (
	"fmt"

	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/infrastructure/persistence/models"
	"litreview/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(models []models.TicketModel) ([]*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		UserID:      t.OwnerID(),
		Image:       t.ImagePath(),
		CreatedAt:   biztime.ToMillis(t.CreatedAt()),
		UpdatedAt:   biztime.ToMillis(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.UserID,
		model.Image,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// ReviewMapper handles the conversion between Review domain entities and persistence models.
type ReviewMapper interface {
	ToModel(r *review.Review) *models.ReviewModel
	ToDomain(model *models.ReviewModel) (*review.Review, error)
	ToDomainList(models []models.ReviewModel) ([]*review.Review, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		UserID:    r.OwnerID(),
		Rating:    r.Rating().Int(),
		Headline:  r.Headline(),
		Body:      r.Body(),
		CreatedAt: biztime.ToMillis(r.CreatedAt()),
		UpdatedAt: biztime.ToMillis(r.UpdatedAt()),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	if model == nil {
		return nil, nil
	}

	r, err := review.ReconstructReview(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Rating,
		model.Headline,
		model.Body,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct review %d: %w", model.ID, err)
	}
	return r, nil
}

func (m *ReviewMapperImpl) ToDomainList(list []models.ReviewModel) ([]*review.Review, error) {
	reviews := make([]*review.Review, 0, len(list))
	for i := range list {
		r, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}
