package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

func swapTestFixture() (*mockSwapRepo, *mockSkillRepo, *mockUserRepo, user.User, user.User) {
	sender := user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", IsActive: true}
	receiver := user.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com", IsActive: true}

	users := &mockUserRepo{users: map[uuid.UUID]user.User{
		sender.ID:   sender,
		receiver.ID: receiver,
	}}
	skills := &mockSkillRepo{byName: map[string]skill.Skill{
		"Guitar": {ID: uuid.New(), Name: "Guitar"},
		"Piano":  {ID: uuid.New(), Name: "Piano"},
	}}
	swaps := &mockSwapRepo{
		requests: map[uuid.UUID]swap.SkillRequest{},
		rows:     map[uuid.UUID]repository.SwapRequestRow{},
	}
	return swaps, skills, users, sender, receiver
}

func TestSwapRequestCreate(t *testing.T) {
	swaps, skills, users, sender, receiver := swapTestFixture()
	notifier := &recordingNotifier{}
	uc := NewSwapRequestUsecase(swaps, skills, users, notifier)

	item, err := uc.Create(context.Background(), sender.ID, CreateSwapRequestInput{
		ReceiverID:   receiver.ID,
		WantedSkill:  "guitar",
		OfferedSkill: "PIANO",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Status != swap.StatusPending {
		t.Fatalf("expected pending status, got %q", item.Status)
	}
	if item.WantedSkill != "Guitar" || item.OfferedSkill != "Piano" {
		t.Fatalf("skill names not normalized: %q / %q", item.WantedSkill, item.OfferedSkill)
	}
	if len(swaps.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(swaps.created))
	}
	if len(notifier.created) != 1 {
		t.Fatalf("expected creation notification")
	}
}

func TestSwapRequestCreateUnknownSkill(t *testing.T) {
	swaps, skills, users, sender, receiver := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)

	_, err := uc.Create(context.Background(), sender.ID, CreateSwapRequestInput{
		ReceiverID:   receiver.ID,
		WantedSkill:  "Juggling",
		OfferedSkill: "Piano",
	})
	if !errors.Is(err, ErrSkillNotInCatalog) {
		t.Fatalf("expected ErrSkillNotInCatalog, got %v", err)
	}
	if len(swaps.created) != 0 {
		t.Fatalf("request should not be created")
	}
}

func TestSwapRequestCreateSelf(t *testing.T) {
	swaps, skills, users, sender, _ := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)

	_, err := uc.Create(context.Background(), sender.ID, CreateSwapRequestInput{
		ReceiverID:   sender.ID,
		WantedSkill:  "Guitar",
		OfferedSkill: "Piano",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwapRequestCreateUnknownReceiver(t *testing.T) {
	swaps, skills, users, sender, _ := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)

	_, err := uc.Create(context.Background(), sender.ID, CreateSwapRequestInput{
		ReceiverID:   uuid.New(),
		WantedSkill:  "Guitar",
		OfferedSkill: "Piano",
	})
	if !errors.Is(err, ErrReceiverNotFound) {
		t.Fatalf("expected ErrReceiverNotFound, got %v", err)
	}
}

func pendingRequest(swaps *mockSwapRepo, sender, receiver user.User) swap.SkillRequest {
	req := swap.SkillRequest{
		ID:         uuid.New(),
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     swap.StatusPending,
	}
	swaps.requests[req.ID] = req
	swaps.rows[req.ID] = repository.SwapRequestRow{
		Request:          req,
		SenderUsername:   sender.Username,
		ReceiverUsername: receiver.Username,
		WantedSkill:      "Guitar",
		OfferedSkill:     "Piano",
	}
	return req
}

func TestSwapRequestUpdateStatusApprove(t *testing.T) {
	swaps, skills, users, sender, receiver := swapTestFixture()
	notifier := &recordingNotifier{}
	uc := NewSwapRequestUsecase(swaps, skills, users, notifier)
	req := pendingRequest(swaps, sender, receiver)

	item, err := uc.UpdateStatus(context.Background(), req.ID, swap.StatusApproved, receiver.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Status != swap.StatusApproved {
		t.Fatalf("expected approved, got %q", item.Status)
	}
	if len(notifier.resolved) != 1 {
		t.Fatalf("expected resolution notification")
	}
}

func TestSwapRequestUpdateStatusOnlyReceiver(t *testing.T) {
	swaps, skills, users, sender, receiver := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)
	req := pendingRequest(swaps, sender, receiver)

	_, err := uc.UpdateStatus(context.Background(), req.ID, swap.StatusApproved, sender.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSwapRequestUpdateStatusTerminalIsFinal(t *testing.T) {
	swaps, skills, users, sender, receiver := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)
	req := pendingRequest(swaps, sender, receiver)

	if _, err := uc.UpdateStatus(context.Background(), req.ID, swap.StatusRejected, receiver.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := uc.UpdateStatus(context.Background(), req.ID, swap.StatusApproved, receiver.ID)
	if !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}

func TestSwapRequestUpdateStatusRejectsPendingTarget(t *testing.T) {
	swaps, skills, users, sender, receiver := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)
	req := pendingRequest(swaps, sender, receiver)

	_, err := uc.UpdateStatus(context.Background(), req.ID, swap.StatusPending, receiver.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwapRequestUpdateStatusMissing(t *testing.T) {
	swaps, skills, users, _, receiver := swapTestFixture()
	uc := NewSwapRequestUsecase(swaps, skills, users, nil)

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), swap.StatusApproved, receiver.ID)
	if !errors.Is(err, ErrSwapRequestNotFound) {
		t.Fatalf("expected ErrSwapRequestNotFound, got %v", err)
	}
}
