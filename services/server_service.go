package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/models"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

const activeCatalogKey = "servers:active"

// ServerService is the resource registry: read-mostly catalog of reservable
// GPU servers plus the administrative CRUD. The active catalog is cached in
// redis when a client is configured; every cache path fails open to the
// database.
type ServerService struct {
	Repos    *repositories.Repos
	Cache    *redis.Client
	CacheTTL time.Duration
}

func NewServerService(repos *repositories.Repos, cache *redis.Client, ttl time.Duration) *ServerService {
	return &ServerService{Repos: repos, Cache: cache, CacheTTL: ttl}
}

func (s *ServerService) ListActive(ctx context.Context) ([]models.GPUServer, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, activeCatalogKey).Bytes(); err == nil {
			var servers []models.GPUServer
			if err := json.Unmarshal(raw, &servers); err == nil {
				return servers, nil
			}
		}
	}

	servers, err := s.Repos.Server.ListActive()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(servers); err == nil {
			if err := s.Cache.Set(ctx, activeCatalogKey, raw, s.CacheTTL).Err(); err != nil {
				log.Printf("catalog cache set failed: %v", err)
			}
		}
	}
	return servers, nil
}

func (s *ServerService) Get(id uint) (models.GPUServer, error) {
	server, err := s.Repos.Server.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.GPUServer{}, fmt.Errorf("%w: server %d", ErrNotFound, id)
		}
		return models.GPUServer{}, err
	}
	return server, nil
}

func (s *ServerService) Create(ctx context.Context, input dto.CreateServerDTO) (models.GPUServer, error) {
	if _, err := s.Repos.Server.GetByName(input.Name); err == nil {
		return models.GPUServer{}, fmt.Errorf("%w: server name %q already exists", ErrValidation, input.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.GPUServer{}, err
	}

	server := models.GPUServer{
		Name:        input.Name,
		Description: input.Description,
		GPUType:     input.GPUType,
		GPUCount:    1,
		IsActive:    true,
	}
	if input.GPUCount != nil {
		server.GPUCount = *input.GPUCount
	}
	if err := s.Repos.Server.Create(&server); err != nil {
		return models.GPUServer{}, err
	}
	s.invalidateCatalog(ctx)
	return server, nil
}

func (s *ServerService) Update(ctx context.Context, id uint, input dto.UpdateServerDTO) (models.GPUServer, error) {
	server, err := s.Get(id)
	if err != nil {
		return models.GPUServer{}, err
	}

	if input.Name != nil {
		server.Name = *input.Name
	}
	if input.Description != nil {
		server.Description = *input.Description
	}
	if input.GPUType != nil {
		server.GPUType = *input.GPUType
	}
	if input.GPUCount != nil {
		server.GPUCount = *input.GPUCount
	}
	if input.IsActive != nil {
		server.IsActive = *input.IsActive
	}

	if err := s.Repos.Server.Update(&server); err != nil {
		return models.GPUServer{}, err
	}
	s.invalidateCatalog(ctx)
	return server, nil
}

// Deactivate removes the server from new-reservation eligibility. Existing
// reservations are not touched.
func (s *ServerService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.Repos.Server.Deactivate(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *ServerService) invalidateCatalog(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, activeCatalogKey).Err(); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}

type catalogEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	GPUType     string `yaml:"gpu_type"`
	GPUCount    int    `yaml:"gpu_count"`
}

// SeedFromYAML upserts the server catalog from a YAML file at startup.
// Entries are matched by name; unknown servers are created, known ones keep
// their active flag.
func (s *ServerService) SeedFromYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []catalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse server catalog: %w", err)
	}

	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		existing, err := s.Repos.Server.GetByName(entry.Name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			count := entry.GPUCount
			if count <= 0 {
				count = 1
			}
			server := models.GPUServer{
				Name:        entry.Name,
				Description: entry.Description,
				GPUType:     entry.GPUType,
				GPUCount:    count,
				IsActive:    true,
			}
			if err := s.Repos.Server.Create(&server); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		existing.Description = entry.Description
		existing.GPUType = entry.GPUType
		if entry.GPUCount > 0 {
			existing.GPUCount = entry.GPUCount
		}
		if err := s.Repos.Server.Update(&existing); err != nil {
			return err
		}
	}
	log.Printf("Server catalog seeded from %s (%d entries)", path, len(entries))
	return nil
}
