package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gift_contribution/internal/domain/entities"
	mock_interfaces "gift_contribution/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeadlineReaper_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIContributionRepository(ctrl)
	notifier := mock_interfaces.NewMockINotificationPublisher(ctrl)
	r := NewDeadlineReaper(repo, notifier, nil)

	due := newTestContribution()
	due.ID = "due"
	due.Deadline = testNow.Add(-time.Minute)

	notDue := newTestContribution()
	notDue.ID = "not-due"

	raced := newTestContribution()
	raced.ID = "raced"
	raced.Deadline = testNow.Add(-time.Hour)

	broken := newTestContribution()
	broken.ID = "broken"
	broken.Deadline = testNow.Add(-time.Hour)

	repo.EXPECT().ListByStatus(gomock.Any(), entities.ContributionStatusOpen, entities.ContributionStatusFunding).
		Return([]entities.Contribution{due, notDue, raced, broken}, nil)
	repo.EXPECT().CompareAndSwap(gomock.Any(), "due", int64(1), gomock.Any()).DoAndReturn(casOn(due))
	repo.EXPECT().CompareAndSwap(gomock.Any(), "raced", int64(1), gomock.Any()).Return(entities.Contribution{}, entities.ErrVersionConflict)
	repo.EXPECT().CompareAndSwap(gomock.Any(), "broken", int64(1), gomock.Any()).Return(entities.Contribution{}, errors.New("throttled"))
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) error {
		if n.Kind != entities.NotificationGiftExpired || n.ContributionID != "due" || n.Recipient != "owner@example.com" {
			t.Fatalf("unexpected notification %+v", n)
		}
		return nil
	})

	n, err := r.Sweep(context.Background(), testNow)
	if n != 1 {
		t.Fatalf("expected 1 expired, got %d", n)
	}
	if err == nil || err.Error() != "throttled" {
		t.Fatalf("expected joined store error, got %v", err)
	}
}

func TestDeadlineReaper_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIContributionRepository(ctrl)
	r := NewDeadlineReaper(repo, nil, nil)

	repo.EXPECT().ListByStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

	if _, err := r.Sweep(context.Background(), testNow); err == nil {
		t.Fatal("expected error")
	}
}
