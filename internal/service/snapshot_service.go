package service

import (
	"context"
	"sort"
	"time"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/repository/specification"
	"brd-aks-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ISnapshotService interface {
	CreateSnapshot(ctx context.Context, sessionId string) (*dto.CreateSnapshotResponse, error)
	SignalsForSnapshot(ctx context.Context, snapshotId uuid.UUID, label string) (*dto.SnapshotSignalsResponse, error)
	StoreSection(ctx context.Context, sessionId string, req *dto.StoreSectionRequest) (*dto.SectionResponse, error)
	LatestSections(ctx context.Context, sessionId string) (*dto.LatestSectionsResponse, error)
}

type snapshotService struct {
	uowFactory   unitofwork.RepositoryFactory
	sectionCache *cache.Cache
}

func NewSnapshotService(uowFactory unitofwork.RepositoryFactory) ISnapshotService {
	return &snapshotService{
		uowFactory:   uowFactory,
		sectionCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// CreateSnapshot freezes the session's current active view as an immutable
// list of chunk ids. Later restores change what the ids resolve to, never
// the list itself.
func (s *snapshotService) CreateSnapshot(ctx context.Context, sessionId string) (*dto.CreateSnapshotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chunks, err := uow.ChunkRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ActiveSignals{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(chunks))
	for i, c := range chunks {
		ids[i] = c.Id
	}

	snapshot := &entity.Snapshot{
		Id:        uuid.New(),
		SessionId: sessionId,
		ChunkIds:  ids,
		CreatedAt: time.Now(),
	}
	if err := uow.SnapshotRepository().Create(ctx, snapshot); err != nil {
		return nil, err
	}

	return &dto.CreateSnapshotResponse{
		SnapshotId: snapshot.Id,
		SessionId:  snapshot.SessionId,
		ChunkCount: len(ids),
		CreatedAt:  snapshot.CreatedAt,
	}, nil
}

// SignalsForSnapshot resolves the frozen id list against current chunk
// state. Chunks deleted since the snapshot are skipped; the snapshot's
// ordering is preserved.
func (s *snapshotService) SignalsForSnapshot(ctx context.Context, snapshotId uuid.UUID, label string) (*dto.SnapshotSignalsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshot, err := uow.SnapshotRepository().FindById(ctx, snapshotId)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	if len(snapshot.ChunkIds) == 0 {
		return &dto.SnapshotSignalsResponse{
			SnapshotId: snapshotId,
			Chunks:     []dto.ChunkResponse{},
		}, nil
	}

	specs := []specification.Specification{
		specification.ByChunkIDs{IDs: snapshot.ChunkIds},
	}
	if label != "" {
		specs = append(specs, specification.ByLabel{Label: label})
	}

	chunks, err := uow.ChunkRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]*entity.ClassifiedChunk, len(chunks))
	for _, c := range chunks {
		byId[c.Id] = c
	}

	ordered := make([]dto.ChunkResponse, 0, len(chunks))
	for _, id := range snapshot.ChunkIds {
		if c, ok := byId[id]; ok {
			ordered = append(ordered, toChunkResponse(c))
		}
	}

	return &dto.SnapshotSignalsResponse{
		SnapshotId: snapshotId,
		Chunks:     ordered,
	}, nil
}

// StoreSection appends a new version of a generated section. Versions are
// monotonic per (session, section name), starting at 1.
func (s *snapshotService) StoreSection(ctx context.Context, sessionId string, req *dto.StoreSectionRequest) (*dto.SectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	snapshot, err := uow.SnapshotRepository().FindById(ctx, req.SnapshotId)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	maxVersion, err := uow.SectionRepository().MaxVersion(ctx, sessionId, req.SectionName)
	if err != nil {
		return nil, err
	}

	section := &entity.Section{
		Id:             uuid.New(),
		SessionId:      sessionId,
		SnapshotId:     req.SnapshotId,
		SectionName:    req.SectionName,
		VersionNumber:  maxVersion + 1,
		Content:        req.Content,
		SourceChunkIds: req.SourceChunkIds,
		GeneratedAt:    time.Now(),
	}
	if err := uow.SectionRepository().Create(ctx, section); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sectionCache.Delete(sessionId)

	return toSectionResponse(section), nil
}

// LatestSections returns the highest version of every section in the
// session, ordered by section name. Results are cached briefly since BRD
// rendering polls this endpoint.
func (s *snapshotService) LatestSections(ctx context.Context, sessionId string) (*dto.LatestSectionsResponse, error) {
	if x, found := s.sectionCache.Get(sessionId); found {
		return x.(*dto.LatestSectionsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
	)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*entity.Section)
	for _, sec := range sections {
		if cur, ok := latest[sec.SectionName]; !ok || sec.VersionNumber > cur.VersionNumber {
			latest[sec.SectionName] = sec
		}
	}

	names := make([]string, 0, len(latest))
	for name := range latest {
		names = append(names, name)
	}
	sort.Strings(names)

	responses := make([]dto.SectionResponse, len(names))
	for i, name := range names {
		responses[i] = *toSectionResponse(latest[name])
	}

	result := &dto.LatestSectionsResponse{
		SessionId: sessionId,
		Sections:  responses,
	}
	s.sectionCache.Set(sessionId, result, cache.DefaultExpiration)
	return result, nil
}

func toSectionResponse(sec *entity.Section) *dto.SectionResponse {
	return &dto.SectionResponse{
		SectionId:      sec.Id,
		SessionId:      sec.SessionId,
		SnapshotId:     sec.SnapshotId,
		SectionName:    sec.SectionName,
		VersionNumber:  sec.VersionNumber,
		Content:        sec.Content,
		SourceChunkIds: sec.SourceChunkIds,
		GeneratedAt:    sec.GeneratedAt,
	}
}
