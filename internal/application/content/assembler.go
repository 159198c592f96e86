// Package content turns tickets and reviews into the read models shown to
// users, resolving owners, closed state, image URLs and rendered bodies in
// batches.
package content

import (
	"context"
	"fmt"

	"litreview/internal/application/content/dto"
	"litreview/internal/domain/feed"
	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/domain/user"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/services/markdown"
)

// MediaURLResolver maps a stored media path to the URL clients fetch it from.
type MediaURLResolver interface {
	URL(path string) string
}

type Assembler struct {
	users    user.Repository
	tickets  ticket.Repository
	reviews  review.Repository
	renderer markdown.Renderer
	media    MediaURLResolver
	logger   logger.Interface
}

func NewAssembler(
	users user.Repository,
	tickets ticket.Repository,
	reviews review.Repository,
	renderer markdown.Renderer,
	media MediaURLResolver,
	logger logger.Interface,
) *Assembler {
	return &Assembler{
		users:    users,
		tickets:  tickets,
		reviews:  reviews,
		renderer: renderer,
		media:    media,
		logger:   logger,
	}
}

func (a *Assembler) Ticket(ctx context.Context, t *ticket.Ticket) (*dto.TicketDTO, error) {
	list, err := a.Tickets(ctx, []*ticket.Ticket{t})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (a *Assembler) Tickets(ctx context.Context, tickets []*ticket.Ticket) ([]dto.TicketDTO, error) {
	ticketIDs := make([]uint, 0, len(tickets))
	ownerIDs := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ticketIDs = append(ticketIDs, t.ID())
		ownerIDs = append(ownerIDs, t.OwnerID())
	}

	owners, err := a.loadUsers(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	closed, err := a.reviews.ReviewedTicketIDs(ctx, ticketIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ticket state: %w", err)
	}

	result := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, a.ticketDTO(t, owners, closed))
	}
	return result, nil
}

func (a *Assembler) Review(ctx context.Context, r *review.Review) (*dto.ReviewDTO, error) {
	list, err := a.Reviews(ctx, []*review.Review{r})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Reviews builds review read models including the ticket each one answers.
func (a *Assembler) Reviews(ctx context.Context, reviews []*review.Review) ([]dto.ReviewDTO, error) {
	ticketIDs := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		ticketIDs = append(ticketIDs, r.TicketID())
	}

	answered, err := a.tickets.GetByIDs(ctx, ticketIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviewed tickets: %w", err)
	}

	ownerIDs := make([]uint, 0, len(reviews)+len(answered))
	for _, r := range reviews {
		ownerIDs = append(ownerIDs, r.OwnerID())
	}
	for _, t := range answered {
		ownerIDs = append(ownerIDs, t.OwnerID())
	}
	owners, err := a.loadUsers(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	ticketsByID := make(map[uint]*dto.TicketDTO, len(answered))
	for _, t := range answered {
		// A ticket referenced by a review is closed by definition.
		td := a.ticketDTO(t, owners, map[uint]bool{t.ID(): true})
		ticketsByID[t.ID()] = &td
	}

	result := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, a.reviewDTO(r, owners, ticketsByID[r.TicketID()]))
	}
	return result, nil
}

// FeedPage converts one page of merged feed items.
func (a *Assembler) FeedPage(ctx context.Context, page feed.Page) (*dto.FeedPageDTO, error) {
	var (
		tickets []*ticket.Ticket
		reviews []*review.Review
	)
	for _, item := range page.Items {
		switch item.ContentType {
		case feed.ContentTypeTicket:
			tickets = append(tickets, item.Ticket)
		case feed.ContentTypeReview:
			reviews = append(reviews, item.Review)
		}
	}

	ticketDTOs, err := a.Tickets(ctx, tickets)
	if err != nil {
		return nil, err
	}
	reviewDTOs, err := a.Reviews(ctx, reviews)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedItemDTO, 0, len(page.Items))
	var ti, ri int
	for _, item := range page.Items {
		entry := dto.FeedItemDTO{
			ContentType: string(item.ContentType),
			TimeCreated: item.TimeCreated,
		}
		switch item.ContentType {
		case feed.ContentTypeTicket:
			entry.Ticket = &ticketDTOs[ti]
			ti++
		case feed.ContentTypeReview:
			entry.Review = &reviewDTOs[ri]
			ri++
		}
		items = append(items, entry)
	}

	return &dto.FeedPageDTO{
		Items:       items,
		Page:        page.Number,
		PageSize:    page.Size,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}, nil
}

func (a *Assembler) loadUsers(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	users, err := a.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return byID, nil
}

func (a *Assembler) ticketDTO(t *ticket.Ticket, owners map[uint]*user.User, closed map[uint]bool) dto.TicketDTO {
	td := dto.TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Owner:       userRef(t.OwnerID(), owners),
		IsClosed:    closed[t.ID()],
		TimeCreated: t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if t.HasImage() && a.media != nil {
		td.ImageURL = a.media.URL(t.ImagePath())
	}
	return td
}

func (a *Assembler) reviewDTO(r *review.Review, owners map[uint]*user.User, answered *dto.TicketDTO) dto.ReviewDTO {
	rd := dto.ReviewDTO{
		ID:          r.ID(),
		Rating:      r.Rating().Int(),
		Headline:    r.Headline(),
		Body:        r.Body(),
		Owner:       userRef(r.OwnerID(), owners),
		Ticket:      answered,
		TimeCreated: r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}

	if a.renderer != nil {
		html, err := a.renderer.Render(r.Body())
		if err != nil {
			// Raw body is still returned; clients fall back to it.
			a.logger.Warnw("failed to render review body", "review_id", r.ID(), "error", err)
		} else {
			rd.BodyHTML = html
		}
	}
	return rd
}

func userRef(id uint, owners map[uint]*user.User) dto.UserRefDTO {
	ref := dto.UserRefDTO{ID: id}
	if u, ok := owners[id]; ok {
		ref.Username = u.Username()
	}
	return ref
}
