package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"testing"
	"time"

	"launchpad/config"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/service"
	"launchpad/internal/infra/qrcode"
	"launchpad/internal/usecase"
	"launchpad/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func (s *memoryStorage) Put(_ context.Context, key string, data []byte, contentType string) error {
	if s.err != nil {
		return s.err
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
		s.types = map[string]string{}
	}
	s.objects[key] = data
	s.types[key] = contentType

	return nil
}

func (s *memoryStorage) Close() error { return nil }

func newTestExportService(f *fixture, storage service.ExportStorage, shareBaseURL string) *exportService {
	cfg := &config.Config{Export: &config.ExportConfig{ShareBaseURL: shareBaseURL}}
	svc := NewExportService(ExportServiceParams{
		Startups:  f.repos.Startups,
		Tasks:     f.repos.Tasks,
		Sections:  f.repos.Sections,
		Artifacts: f.repos.Artifacts,
		Storage:   storage,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Publisher: f.publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*exportService)
	svc.now = func() time.Time { return time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC) }

	return svc
}

func TestExportService_BuildCollectsPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)
	_, _, err := f.planning.Audience.Save(ctx, owner.ID, startup.ID, &entity.TargetAudience{})
	require.NoError(t, err)
	_, err = f.tasks.Create(ctx, owner.ID, startup.ID, &usecase.CreateTaskInput{Title: "T"})
	require.NoError(t, err)

	bundle, err := newTestExportService(f, nil, "").Build(ctx, owner.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, startup.ID, bundle.Startup.ID)
	assert.NotNil(t, bundle.Audience)
	assert.Nil(t, bundle.Idea)
	assert.Len(t, bundle.Tasks, 1)
	assert.Empty(t, bundle.Artifacts)
}

func TestExportService_Publish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)
	storage := &memoryStorage{}

	receipt, err := newTestExportService(f, storage, "").Publish(ctx, owner.ID, startup.ID)
	require.NoError(t, err)

	assert.Equal(t, "1/acme-20260504T030201Z.json", receipt.Key)
	data := storage.objects[receipt.Key]
	require.NotEmpty(t, data)
	assert.Equal(t, "application/json", storage.types[receipt.Key])
	assert.Equal(t, int64(len(data)), receipt.Size)
	assert.Equal(t, util.ChecksumBytes(data), receipt.Checksum)

	var bundle entity.ExportBundle
	require.NoError(t, json.Unmarshal(data, &bundle))
	assert.Equal(t, "Acme", bundle.Startup.Name)

	events := f.publisher.ofType(constants.EventStartupExported)
	require.Len(t, events, 1)
	assert.Equal(t, receipt.Key, events[0].Attributes["key"])
}

func TestExportService_PublishFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)

	_, err := newTestExportService(f, nil, "").Publish(ctx, owner.ID, startup.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrExportNotConfigured))

	_, err = newTestExportService(f, &memoryStorage{err: errors.New("bucket gone")}, "").Publish(ctx, owner.ID, startup.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrExportFailed))
	assert.Empty(t, f.publisher.ofType(constants.EventStartupExported))
}

func TestExportService_ShareQR(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	other := f.createUser(t, "bob")
	startup := f.createStartup(t, owner.ID)

	_, err := newTestExportService(f, nil, "").ShareQR(ctx, owner.ID, startup.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrExportNotConfigured))

	svc := newTestExportService(f, nil, "https://launchpad.example/s/")
	assert.Equal(t, "https://launchpad.example/s/1-acme", svc.shareURL(startup))

	data, err := svc.ShareQR(ctx, owner.ID, startup.ID)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	_, err = svc.ShareQR(ctx, other.ID, startup.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrStartupForbidden))
}
