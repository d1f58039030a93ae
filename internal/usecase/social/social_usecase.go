package social

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
)

// UseCase manages the friend/soulmate request lifecycle and the views
// derived from it.
type UseCase struct {
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
}

func NewUseCase(userRepo repository.UserRepository, requestRepo repository.RequestRepository) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

// SendRequestInput represents a friend/soulmate request payload
type SendRequestInput struct {
	LoginOrID string             `json:"login_or_id" binding:"required"`
	Type      domain.RequestType `json:"type" binding:"required"`
}

// ActInput represents accept/decline action on a pending request
type ActInput struct {
	RequestID int    `json:"request_id" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=accept decline"`
}

// RemoveFriendInput identifies the friend to remove
type RemoveFriendInput struct {
	FriendID int `json:"friend_id" binding:"required"`
}

// RequestItem is a pending request with both parties' public profiles.
type RequestItem struct {
	ID        int                  `json:"id"`
	FromUser  *domain.PublicUser   `json:"from_user"`
	ToUser    *domain.PublicUser   `json:"to_user"`
	Type      domain.RequestType   `json:"type"`
	Status    domain.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// Messages groups pending requests by direction.
type Messages struct {
	Incoming []*RequestItem `json:"incoming"`
	Outgoing []*RequestItem `json:"outgoing"`
}

// Profile is the authenticated user's own view: public fields plus the
// soulmate link and the derived friends list.
type Profile struct {
	ID        int                  `json:"id"`
	Email     string               `json:"email"`
	Nickname  string               `json:"nickname"`
	AvatarURL *string              `json:"avatar_url"`
	Rating    int                  `json:"rating"`
	Soulmate  *domain.PublicUser   `json:"soulmate"`
	Friends   []*domain.PublicUser `json:"friends"`
}

// UpdateAvatar records the public URL of a freshly stored avatar file.
func (uc *UseCase) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	return uc.userRepo.UpdateAvatar(ctx, userID, avatarURL)
}

// FindByLoginOrID resolves a user by numeric id, then nickname, then
// email, in that precedence.
func (uc *UseCase) FindByLoginOrID(ctx context.Context, loginOrID string) (*domain.User, error) {
	if id, err := strconv.Atoi(loginOrID); err == nil {
		if user, err := uc.userRepo.GetByID(ctx, id); err == nil {
			return user, nil
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}
	if user, err := uc.userRepo.GetByNickname(ctx, loginOrID); err == nil {
		return user, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return uc.userRepo.GetByEmail(ctx, loginOrID)
}

// SendRequest creates a pending friend or soulmate request.
func (uc *UseCase) SendRequest(ctx context.Context, current *domain.User, in *SendRequestInput) error {
	if !in.Type.Valid() {
		return domain.ErrInvalidInput
	}

	target, err := uc.FindByLoginOrID(ctx, in.LoginOrID)
	if err != nil {
		return err
	}
	if target.ID == current.ID {
		return domain.ErrSelfRequest
	}

	if in.Type == domain.RequestTypeSoulmate {
		// Fast-path check; acceptance re-validates under lock.
		if current.HasSoulmate() || target.HasSoulmate() {
			return domain.ErrSoulmateTaken
		}
	}

	req := &domain.FriendRequest{
		FromUserID: current.ID,
		ToUserID:   target.ID,
		Type:       in.Type,
	}
	return uc.requestRepo.Create(ctx, req)
}

// ListMessages returns pending requests addressed to and sent by the user.
func (uc *UseCase) ListMessages(ctx context.Context, userID int) (*Messages, error) {
	incoming, err := uc.requestRepo.ListPendingIncoming(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incoming requests: %w", err)
	}
	outgoing, err := uc.requestRepo.ListPendingOutgoing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outgoing requests: %w", err)
	}

	idSet := make(map[int]struct{})
	for _, req := range append(append([]*domain.FriendRequest{}, incoming...), outgoing...) {
		idSet[req.FromUserID] = struct{}{}
		idSet[req.ToUserID] = struct{}{}
	}
	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load request participants: %w", err)
	}
	byID := make(map[int]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	toItems := func(requests []*domain.FriendRequest) []*RequestItem {
		items := make([]*RequestItem, 0, len(requests))
		for _, req := range requests {
			from, okFrom := byID[req.FromUserID]
			to, okTo := byID[req.ToUserID]
			if !okFrom || !okTo {
				continue
			}
			items = append(items, &RequestItem{
				ID:        req.ID,
				FromUser:  from.Public(),
				ToUser:    to.Public(),
				Type:      req.Type,
				Status:    req.Status,
				CreatedAt: req.CreatedAt,
			})
		}
		return items
	}

	return &Messages{
		Incoming: toItems(incoming),
		Outgoing: toItems(outgoing),
	}, nil
}

// Act accepts or declines a pending request addressed to the user.
func (uc *UseCase) Act(ctx context.Context, current *domain.User, in *ActInput) error {
	req, err := uc.requestRepo.GetByID(ctx, in.RequestID)
	if err != nil {
		return err
	}
	// Not addressed to the caller or already resolved reads as missing.
	if req.ToUserID != current.ID || req.Status != domain.RequestStatusPending {
		return domain.ErrRequestNotFound
	}

	if in.Action == "decline" {
		return uc.requestRepo.SetStatus(ctx, req.ID, domain.RequestStatusDeclined)
	}
	if in.Action != "accept" {
		return domain.ErrInvalidInput
	}

	if req.Type == domain.RequestTypeSoulmate {
		// The link transaction re-checks that neither party acquired a
		// soulmate since the request was created.
		if err := uc.userRepo.LinkSoulmates(ctx, req.FromUserID, req.ToUserID); err != nil {
			return err
		}
	}

	return uc.requestRepo.SetStatus(ctx, req.ID, domain.RequestStatusAccepted)
}

// RemoveSoulmate clears the mutual soulmate link.
func (uc *UseCase) RemoveSoulmate(ctx context.Context, current *domain.User) error {
	if !current.HasSoulmate() {
		return domain.ErrNoSoulmate
	}
	return uc.userRepo.UnlinkSoulmates(ctx, current.ID, *current.SoulmateID)
}

// RemoveFriend deletes the accepted friendship between the two users.
// Friendship has no terminal state, the request row is simply removed.
func (uc *UseCase) RemoveFriend(ctx context.Context, current *domain.User, friendID int) error {
	req, err := uc.requestRepo.FindAcceptedFriendship(ctx, current.ID, friendID)
	if err != nil {
		return err
	}
	return uc.requestRepo.Delete(ctx, req.ID)
}

// Friends computes the friends list from accepted friend-kind requests;
// it is a derived view, never stored.
func (uc *UseCase) Friends(ctx context.Context, userID int) ([]*domain.PublicUser, error) {
	ids, err := uc.requestRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	friends := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		friends = append(friends, u.Public())
	}
	return friends, nil
}

// GetProfile builds the authenticated user's profile view.
func (uc *UseCase) GetProfile(ctx context.Context, current *domain.User) (*Profile, error) {
	var soulmate *domain.PublicUser
	if current.HasSoulmate() {
		mate, err := uc.userRepo.GetByID(ctx, *current.SoulmateID)
		if err == nil {
			soulmate = mate.Public()
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	friends, err := uc.Friends(ctx, current.ID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:        current.ID,
		Email:     current.Email,
		Nickname:  current.Nickname,
		AvatarURL: current.AvatarURL,
		Rating:    current.Rating,
		Soulmate:  soulmate,
		Friends:   friends,
	}, nil
}
