package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/models"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"github.com/linskybing/gpu-reserve-go/repositories/mock_repositories"
	"gorm.io/gorm"
)

func setupServerMocks(t *testing.T) (*ServerService, *mock_repositories.MockServerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockServer := mock_repositories.NewMockServerRepo(ctrl)
	repos := &repositories.Repos{Server: mockServer}
	return NewServerService(repos, nil, 0), mockServer
}

func TestServerCreate(t *testing.T) {
	svc, mockServer := setupServerMocks(t)

	mockServer.EXPECT().GetByName("gpu-node-01").Return(models.GPUServer{}, gorm.ErrRecordNotFound)
	mockServer.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.GPUServer) error {
		if s.GPUCount != 1 || !s.IsActive {
			t.Fatalf("defaults not applied: %+v", s)
		}
		s.SID = 1
		return nil
	})

	server, err := svc.Create(context.Background(), dto.CreateServerDTO{Name: "gpu-node-01", GPUType: "A100"})
	if err != nil || server.SID != 1 {
		t.Fatalf("Create failed: %v", err)
	}
}

func TestServerCreateDuplicateName(t *testing.T) {
	svc, mockServer := setupServerMocks(t)

	mockServer.EXPECT().GetByName("gpu-node-01").Return(models.GPUServer{SID: 1, Name: "gpu-node-01"}, nil)

	_, err := svc.Create(context.Background(), dto.CreateServerDTO{Name: "gpu-node-01"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for duplicate name, got %v", err)
	}
}

func TestServerGetNotFound(t *testing.T) {
	svc, mockServer := setupServerMocks(t)

	mockServer.EXPECT().GetByID(uint(9)).Return(models.GPUServer{}, gorm.ErrRecordNotFound)

	if _, err := svc.Get(9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerUpdate(t *testing.T) {
	svc, mockServer := setupServerMocks(t)

	existing := models.GPUServer{SID: 1, Name: "gpu-node-01", GPUCount: 8, IsActive: true}
	mockServer.EXPECT().GetByID(uint(1)).Return(existing, nil)
	mockServer.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *models.GPUServer) error {
		if s.GPUCount != 4 || s.IsActive {
			t.Fatalf("update not applied: %+v", s)
		}
		return nil
	})

	count := 4
	inactive := false
	updated, err := svc.Update(context.Background(), 1, dto.UpdateServerDTO{GPUCount: &count, IsActive: &inactive})
	if err != nil || updated.GPUCount != 4 {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestServerDeactivate(t *testing.T) {
	svc, mockServer := setupServerMocks(t)

	mockServer.EXPECT().GetByID(uint(1)).Return(models.GPUServer{SID: 1}, nil)
	mockServer.EXPECT().Deactivate(uint(1)).Return(nil)

	if err := svc.Deactivate(context.Background(), 1); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
}

func TestSeedFromYAML(t *testing.T) {
	svc, mockServer := setupServerMocks(t)

	catalog := `
- name: gpu-node-01
  description: rack 1
  gpu_type: A100
  gpu_count: 8
- name: gpu-node-02
  gpu_type: H100
`
	path := filepath.Join(t.TempDir(), "servers.yaml")
	if err := os.WriteFile(path, []byte(catalog), 0o644); err != nil {
		t.Fatal(err)
	}

	// node-01 exists already and keeps its active flag; node-02 is created
	// with the gpu_count default.
	existing := models.GPUServer{SID: 1, Name: "gpu-node-01", GPUCount: 4, IsActive: false}
	mockServer.EXPECT().GetByName("gpu-node-01").Return(existing, nil)
	mockServer.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *models.GPUServer) error {
		if s.GPUCount != 8 || s.Description != "rack 1" || s.IsActive {
			t.Fatalf("upsert not applied: %+v", s)
		}
		return nil
	})
	mockServer.EXPECT().GetByName("gpu-node-02").Return(models.GPUServer{}, gorm.ErrRecordNotFound)
	mockServer.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.GPUServer) error {
		if s.Name != "gpu-node-02" || s.GPUCount != 1 || !s.IsActive {
			t.Fatalf("seed create wrong: %+v", s)
		}
		return nil
	})

	if err := svc.SeedFromYAML(path); err != nil {
		t.Fatalf("SeedFromYAML failed: %v", err)
	}
}
