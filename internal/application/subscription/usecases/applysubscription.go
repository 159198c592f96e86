package usecases

import (
	"context"
	"fmt"

	"litreview/internal/application/subscription/dto"
	"litreview/internal/domain/follow"
	"litreview/internal/domain/user"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

type Action string

const (
	ActionSubscribe   Action = "subscribe"
	ActionUnsubscribe Action = "unsubscribe"
)

// ApplySubscriptionCommand targets a user either by ID or, when TargetUserID
// is zero, by username.
type ApplySubscriptionCommand struct {
	ActorID        uint
	TargetUserID   uint
	TargetUsername string
	Action         Action
}

// ApplySubscriptionUseCase follows or unfollows a user. Every expected
// condition is reported through the outcome; only storage failures are
// returned as errors.
type ApplySubscriptionUseCase struct {
	userRepo   user.Repository
	followRepo follow.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewApplySubscriptionUseCase(
	userRepo user.Repository,
	followRepo follow.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *ApplySubscriptionUseCase {
	return &ApplySubscriptionUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *ApplySubscriptionUseCase) Execute(ctx context.Context, cmd ApplySubscriptionCommand) (*dto.OutcomeDTO, error) {
	uc.logger.Infow("executing apply subscription use case",
		"user_id", cmd.ActorID,
		"target_user_id", cmd.TargetUserID,
		"action", cmd.Action,
	)

	if cmd.Action != ActionSubscribe && cmd.Action != ActionUnsubscribe {
		return rejected(dto.StatusInvalidAction, errors.NewBadRequestError("Unknown action"), nil), nil
	}

	target, err := uc.resolveTarget(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return rejected(dto.StatusUserNotFound, errors.NewNotFoundError("User does not exist"), nil), nil
	}
	ref := &dto.RelatedDTO{ID: target.ID(), Username: target.Username()}

	if target.ID() == cmd.ActorID {
		msg := "You can't subscribe to yourself!"
		if cmd.Action == ActionUnsubscribe {
			msg = "You can't unsubscribe from yourself!"
		}
		return rejected(dto.StatusSelfReference, errors.NewSelfReferenceError(msg), ref), nil
	}

	if cmd.Action == ActionSubscribe {
		return uc.subscribe(ctx, cmd.ActorID, ref)
	}
	return uc.unsubscribe(ctx, cmd.ActorID, ref)
}

func (uc *ApplySubscriptionUseCase) resolveTarget(ctx context.Context, cmd ApplySubscriptionCommand) (*user.User, error) {
	var (
		target *user.User
		err    error
	)
	switch {
	case cmd.TargetUserID != 0:
		target, err = uc.userRepo.GetByID(ctx, cmd.TargetUserID)
	case cmd.TargetUsername != "":
		target, err = uc.userRepo.GetByUsername(ctx, cmd.TargetUsername)
	default:
		return nil, nil
	}
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		uc.logger.Errorw("failed to resolve subscription target", "error", err)
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return target, nil
}

func (uc *ApplySubscriptionUseCase) subscribe(ctx context.Context, actorID uint, target *dto.RelatedDTO) (*dto.OutcomeDTO, error) {
	already := false
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.followRepo.Exists(txCtx, actorID, target.ID)
		if err != nil {
			return err
		}
		if exists {
			already = true
			return nil
		}

		edge, err := follow.NewEdge(actorID, target.ID)
		if err != nil {
			return err
		}
		if err := uc.followRepo.Create(txCtx, edge); err != nil {
			if errors.IsDuplicateError(err) {
				already = true
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to subscribe", "user_id", actorID, "target_user_id", target.ID, "error", err)
		return nil, err
	}

	if already {
		return rejected(dto.StatusAlreadyFollowing, errors.NewConflictError(fmt.Sprintf("Already following %s!", target.Username)), target), nil
	}

	uc.logger.Infow("user subscribed", "user_id", actorID, "target_user_id", target.ID)
	return accepted(dto.StatusSubscribed, fmt.Sprintf("You are now following %s!", target.Username), target), nil
}

func (uc *ApplySubscriptionUseCase) unsubscribe(ctx context.Context, actorID uint, target *dto.RelatedDTO) (*dto.OutcomeDTO, error) {
	var deleted bool
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = uc.followRepo.Delete(txCtx, actorID, target.ID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to unsubscribe", "user_id", actorID, "target_user_id", target.ID, "error", err)
		return nil, err
	}

	if !deleted {
		return rejected(dto.StatusNotFollowing, errors.NewConflictError(fmt.Sprintf("You were not following %s!", target.Username)), target), nil
	}

	uc.logger.Infow("user unsubscribed", "user_id", actorID, "target_user_id", target.ID)
	return accepted(dto.StatusUnsubscribed, fmt.Sprintf("You are no longer following %s.", target.Username), target), nil
}

func accepted(status dto.Status, message string, target *dto.RelatedDTO) *dto.OutcomeDTO {
	return &dto.OutcomeDTO{
		Status:  status,
		Success: true,
		Message: message,
		Target:  target,
	}
}

func rejected(status dto.Status, failure *errors.AppError, target *dto.RelatedDTO) *dto.OutcomeDTO {
	return &dto.OutcomeDTO{
		Status:  status,
		Message: failure.Message,
		Target:  target,
		Failure: failure,
	}
}
