package services

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/gpu-reserve-go/aiclient"
	"github.com/linskybing/gpu-reserve-go/db"
	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/internal/testutils"
	"github.com/linskybing/gpu-reserve-go/minio"
	"github.com/linskybing/gpu-reserve-go/models"
	"github.com/linskybing/gpu-reserve-go/notify"
	"github.com/linskybing/gpu-reserve-go/queue"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"github.com/stretchr/testify/require"
)

// TestConcurrentCreationSerializes runs two racing creations against a real
// postgres so the server row lock, not test scheduling, decides the outcome.
// Needs docker or TEST_DB_DSN; enable with INTEGRATION_TESTS=1.
func TestConcurrentCreationSerializes(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run postgres integration tests")
	}

	gdb, cleanup := testutils.SetupPostgres()
	t.Cleanup(cleanup)
	db.InitWithGormDB(gdb)

	repos := repositories.New()
	userA := models.User{Username: "alice", Password: "x", Role: models.UserRoleUser}
	userB := models.User{Username: "bob", Password: "x", Role: models.UserRoleUser}
	require.NoError(t, repos.User.Create(&userA))
	require.NoError(t, repos.User.Create(&userB))
	server := models.GPUServer{Name: "gpu-node-01", GPUType: "A100", GPUCount: 8, IsActive: true}
	require.NoError(t, repos.Server.Create(&server))

	day := time.Now().Add(48 * time.Hour).Truncate(24 * time.Hour)

	makeSvc := func(score int) *ReservationService {
		interp := &stubInterpreter{cand: aiclient.Candidate{
			Purpose:          "training run",
			StartTime:        day.Add(10 * time.Hour),
			EndTime:          day.Add(14 * time.Hour),
			ServerPreference: "gpu-node-01",
			PriorityScore:    score,
		}}
		return NewReservationService(repos, interp, queue.NoopPublisher{}, notify.NoopNotifier{}, minio.NoopArchiver{})
	}

	svcLow := makeSvc(5)
	svcHigh := makeSvc(8)

	var wg sync.WaitGroup
	var lowRes, highRes models.Reservation
	var lowErr, highErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		lowRes, lowErr = svcLow.CreateReservation(context.Background(), userA.UID, dto.CreateReservationDTO{
			NaturalLanguageRequest: "reserve a gpu for a training run",
		})
	}()
	go func() {
		defer wg.Done()
		highRes, highErr = svcHigh.CreateReservation(context.Background(), userB.UID, dto.CreateReservationDTO{
			NaturalLanguageRequest: "urgent: reserve a gpu",
		})
	}()
	wg.Wait()

	require.NoError(t, lowErr)
	require.NoError(t, highErr)

	// The higher score always holds the slot. Depending on arrival order the
	// lower one is either rejected outright or parked in pending_rejection,
	// but the two are never both confirmed.
	high, err := repos.Reservation.GetByID(highRes.RID)
	require.NoError(t, err)
	require.Equal(t, models.ReservationStatusConfirmed, high.Status)

	low, err := repos.Reservation.GetByID(lowRes.RID)
	require.NoError(t, err)
	require.Contains(t, []models.ReservationStatus{
		models.ReservationStatusRejected,
		models.ReservationStatusPendingRejection,
	}, low.Status)
}
