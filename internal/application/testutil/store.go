// Package testutil provides in-memory implementations of the domain
// repositories for application-layer tests. A Store behaves like a small
// database: entities are copied in and out, unique constraints are enforced
// and RunInTransaction rolls back on error.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"litreview/internal/domain/follow"
	"litreview/internal/domain/review"
	"litreview/internal/domain/ticket"
	"litreview/internal/domain/user"
	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/query"
)

type state struct {
	users    map[uint]user.User
	sessions map[string]user.Session
	tickets  map[uint]ticket.Ticket
	reviews  map[uint]review.Review
	follows  map[[2]uint]follow.Edge
	nextID   uint
}

func (s state) clone() state {
	c := state{
		users:    make(map[uint]user.User, len(s.users)),
		sessions: make(map[string]user.Session, len(s.sessions)),
		tickets:  make(map[uint]ticket.Ticket, len(s.tickets)),
		reviews:  make(map[uint]review.Review, len(s.reviews)),
		follows:  make(map[[2]uint]follow.Edge, len(s.follows)),
		nextID:   s.nextID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.tickets {
		c.tickets[k] = v
	}
	for k, v := range s.reviews {
		c.reviews[k] = v
	}
	for k, v := range s.follows {
		c.follows[k] = v
	}
	return c
}

// Store is an in-memory database shared by the fake repositories.
type Store struct {
	mu       sync.Mutex
	data     state
	failures map[string]error

	// TxCount counts RunInTransaction calls.
	TxCount int
}

func NewStore() *Store {
	return &Store{
		data: state{
			users:    make(map[uint]user.User),
			sessions: make(map[string]user.Session),
			tickets:  make(map[uint]ticket.Ticket),
			reviews:  make(map[uint]review.Review),
			follows:  make(map[[2]uint]follow.Edge),
		},
		failures: make(map[string]error),
	}
}

// Fail makes every later call of op (for example "reviews.Save") return err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

func (s *Store) next() uint {
	s.data.nextID++
	return s.data.nextID
}

// RunInTransaction implements db.Transactor. Changes made by fn are discarded
// when it returns an error.
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	s.TxCount++
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Counts reports the number of stored rows per table.
func (s *Store) Counts() (users, tickets, reviews, follows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.users), len(s.data.tickets), len(s.data.reviews), len(s.data.follows)
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Sessions() *SessionRepository { return &SessionRepository{s: s} }
func (s *Store) Tickets() *TicketRepository   { return &TicketRepository{s: s} }
func (s *Store) Reviews() *ReviewRepository   { return &ReviewRepository{s: s} }
func (s *Store) Follows() *FollowRepository   { return &FollowRepository{s: s} }

func duplicate(what string) error {
	return fmt.Errorf("failed to save %s: %w", what, gorm.ErrDuplicatedKey)
}

// UserRepository implements user.Repository.
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.data.users {
		if existing.Username() == u.Username() {
			return duplicate("user")
		}
	}
	if err := u.SetID(r.s.next()); err != nil {
		return err
	}
	r.s.data.users[u.ID()] = *u
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.GetByID"); err != nil {
		return nil, err
	}
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.GetByUsername"); err != nil {
		return nil, err
	}
	name := vo.NormalizeUsername(username)
	for _, u := range r.s.data.users {
		if u.Username() == name {
			found := u
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*user.User, 0, len(ids))
	seen := make(map[uint]bool)
	for _, id := range ids {
		if u, ok := r.s.data.users[id]; ok && !seen[id] {
			seen[id] = true
			found := u
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.UpdatePassword"); err != nil {
		return err
	}
	if _, ok := r.s.data.users[u.ID()]; !ok {
		return errors.NewNotFoundError("user not found")
	}
	r.s.data.users[u.ID()] = *u
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	search := strings.ToLower(vo.NormalizeUsername(filter.Search))

	var matched []*user.User
	for _, u := range r.s.data.users {
		if filter.ExcludeID != 0 && u.ID() == filter.ExcludeID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Username()), search) {
			continue
		}
		found := u
		matched = append(matched, &found)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Username() < matched[j].Username() })

	total := int64(len(matched))
	paging := query.PageFilter{Page: filter.Page, PageSize: filter.PageSize}
	start, size := paging.Offset(), paging.Limit()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// SessionRepository implements user.SessionRepository.
type SessionRepository struct{ s *Store }

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.Create"); err != nil {
		return err
	}
	r.s.data.sessions[session.ID] = *session
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.data.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.sessions, sessionID)
	return nil
}

func (r *SessionRepository) DeleteOtherSessions(ctx context.Context, userID uint, keepID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, session := range r.s.data.sessions {
		if session.UserID == userID && id != keepID {
			delete(r.s.data.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.DeleteExpired"); err != nil {
		return 0, err
	}
	var n int64
	for id, session := range r.s.data.sessions {
		if session.IsExpired() {
			delete(r.s.data.sessions, id)
			n++
		}
	}
	return n, nil
}

// TicketRepository implements ticket.Repository.
type TicketRepository struct{ s *Store }

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("tickets.Save"); err != nil {
		return err
	}
	if err := t.SetID(r.s.next()); err != nil {
		return err
	}
	r.s.data.tickets[t.ID()] = *t
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("tickets.Update"); err != nil {
		return err
	}
	if _, ok := r.s.data.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	r.s.data.tickets[t.ID()] = *t
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("tickets.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.data.tickets[id]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	delete(r.s.data.tickets, id)
	for rid, rv := range r.s.data.reviews {
		if rv.TicketID() == id {
			delete(r.s.data.reviews, rid)
		}
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("tickets.GetByID"); err != nil {
		return nil, err
	}
	t, ok := r.s.data.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return &t, nil
}

func (r *TicketRepository) GetByIDForOwner(ctx context.Context, id uint, ownerID uint) (*ticket.Ticket, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.OwnerID() != ownerID {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (r *TicketRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*ticket.Ticket, 0, len(ids))
	seen := make(map[uint]bool)
	for _, id := range ids {
		if t, ok := r.s.data.tickets[id]; ok && !seen[id] {
			seen[id] = true
			found := t
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *TicketRepository) ListByOwners(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("tickets.ListByOwners"); err != nil {
		return nil, err
	}
	owners := idSet(ownerIDs)
	var result []*ticket.Ticket
	for _, t := range r.s.data.tickets {
		if owners[t.OwnerID()] {
			found := t
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

// ReviewRepository implements review.Repository.
type ReviewRepository struct{ s *Store }

func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("reviews.Save"); err != nil {
		return err
	}
	for _, existing := range r.s.data.reviews {
		if existing.TicketID() == rv.TicketID() {
			return duplicate("review")
		}
	}
	if err := rv.SetID(r.s.next()); err != nil {
		return err
	}
	r.s.data.reviews[rv.ID()] = *rv
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("reviews.Update"); err != nil {
		return err
	}
	if _, ok := r.s.data.reviews[rv.ID()]; !ok {
		return errors.NewNotFoundError("review not found")
	}
	r.s.data.reviews[rv.ID()] = *rv
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.reviews[id]; !ok {
		return errors.NewNotFoundError("review not found")
	}
	delete(r.s.data.reviews, id)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.data.reviews[id]
	if !ok {
		return nil, errors.NewNotFoundError("review not found")
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByIDForOwner(ctx context.Context, id uint, ownerID uint) (*review.Review, error) {
	rv, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.OwnerID() != ownerID {
		return nil, errors.NewNotFoundError("review not found")
	}
	return rv, nil
}

func (r *ReviewRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	reviewed, err := r.ReviewedTicketIDs(ctx, []uint{ticketID})
	if err != nil {
		return false, err
	}
	return reviewed[ticketID], nil
}

func (r *ReviewRepository) ReviewedTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := idSet(ticketIDs)
	reviewed := make(map[uint]bool)
	for _, rv := range r.s.data.reviews {
		if wanted[rv.TicketID()] {
			reviewed[rv.TicketID()] = true
		}
	}
	return reviewed, nil
}

func (r *ReviewRepository) ListByOwners(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("reviews.ListByOwners"); err != nil {
		return nil, err
	}
	owners := idSet(ownerIDs)
	var result []*review.Review
	for _, rv := range r.s.data.reviews {
		if owners[rv.OwnerID()] {
			found := rv
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

// FollowRepository implements follow.Repository.
type FollowRepository struct{ s *Store }

func (r *FollowRepository) Create(ctx context.Context, edge *follow.Edge) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows.Create"); err != nil {
		return err
	}
	key := [2]uint{edge.FollowerID, edge.FollowedUserID}
	if _, ok := r.s.data.follows[key]; ok {
		return duplicate("follow edge")
	}
	edge.ID = r.s.next()
	r.s.data.follows[key] = *edge
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followedUserID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows.Delete"); err != nil {
		return false, err
	}
	key := [2]uint{followerID, followedUserID}
	if _, ok := r.s.data.follows[key]; !ok {
		return false, nil
	}
	delete(r.s.data.follows, key)
	return true, nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedUserID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows.Exists"); err != nil {
		return false, err
	}
	_, ok := r.s.data.follows[[2]uint{followerID, followedUserID}]
	return ok, nil
}

func (r *FollowRepository) FollowedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("follows.FollowedUserIDs"); err != nil {
		return nil, err
	}
	var ids []uint
	for key := range r.s.data.follows {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID uint) ([]follow.Relation, error) {
	return r.relations(userID, 0, 1), nil
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID uint) ([]follow.Relation, error) {
	return r.relations(userID, 1, 0), nil
}

func (r *FollowRepository) relations(userID uint, self, other int) []follow.Relation {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := []follow.Relation{}
	for key, edge := range r.s.data.follows {
		if key[self] != userID {
			continue
		}
		u, ok := r.s.data.users[key[other]]
		if !ok {
			continue
		}
		result = append(result, follow.Relation{UserID: u.ID(), Username: u.Username(), Since: edge.CreatedAt})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.relations(userID, 0, 1))), nil
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.relations(userID, 1, 0))), nil
}

func idSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
