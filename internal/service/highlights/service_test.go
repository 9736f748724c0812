package highlights

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/filestore"
	highlightRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/highlight"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
	"github.com/m04kA/EuroAsia-BookingService/pkg/ptr"
)

type repoStub struct {
	byCalendar map[int64]*domain.Highlight
	nextID     int64
	knownDays  map[int64]bool
}

func newRepoStub(days ...int64) *repoStub {
	r := &repoStub{byCalendar: make(map[int64]*domain.Highlight), knownDays: make(map[int64]bool)}
	for _, d := range days {
		r.knownDays[d] = true
	}
	return r
}

func (r *repoStub) GetByDate(_ context.Context, _ time.Time) (*domain.Highlight, error) {
	for _, h := range r.byCalendar {
		return h, nil
	}
	return nil, highlightRepo.ErrHighlightNotFound
}

func (r *repoStub) GetByCalendarID(_ context.Context, calendarID int64) (*domain.Highlight, error) {
	if h, ok := r.byCalendar[calendarID]; ok {
		copied := *h
		return &copied, nil
	}
	return nil, highlightRepo.ErrHighlightNotFound
}

func (r *repoStub) Upsert(_ context.Context, h *domain.Highlight) (*domain.Highlight, error) {
	if !r.knownDays[h.CalendarID] {
		return nil, highlightRepo.ErrCalendarDayNotFound
	}
	if existing, ok := r.byCalendar[h.CalendarID]; ok {
		h.ID = existing.ID
		if h.ImagePath == nil {
			h.ImagePath = existing.ImagePath
		}
	} else {
		r.nextID++
		h.ID = r.nextID
	}
	h.UploadedAt = time.Now()
	r.byCalendar[h.CalendarID] = h
	return h, nil
}

func (r *repoStub) Delete(_ context.Context, id int64) (*string, error) {
	for calendarID, h := range r.byCalendar {
		if h.ID == id {
			delete(r.byCalendar, calendarID)
			return h.ImagePath, nil
		}
	}
	return nil, highlightRepo.ErrHighlightNotFound
}

type filesStub struct {
	saved   []string
	removed []string
	saveErr error
}

func (f *filesStub) Save(category, originalName string, src io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	io.Copy(io.Discard, src)
	path := "/uploads/" + category + "/" + originalName
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *filesStub) Remove(publicPath string) error {
	f.removed = append(f.removed, publicPath)
	return nil
}

func upload(name string) *models.FileUpload {
	return &models.FileUpload{Filename: name, Content: strings.NewReader("img")}
}

func TestService_Upsert_ReplacesImage(t *testing.T) {
	repo := newRepoStub(1)
	files := &filesStub{}
	svc := NewService(repo, files, logger.NewNop())
	ctx := context.Background()

	first, err := svc.Upsert(ctx, &models.UpsertRequest{CalendarID: 1, Image: upload("a.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/highlights/a.jpg", ptr.Deref(first.ImagePath))

	second, err := svc.Upsert(ctx, &models.UpsertRequest{CalendarID: 1, Image: upload("b.png"), VideoURL: ptr.Ptr(" https://instagram.com/p/1 ")})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "/uploads/highlights/b.png", ptr.Deref(second.ImagePath))
	assert.Equal(t, "https://instagram.com/p/1", ptr.Deref(second.VideoURL))
	assert.Equal(t, []string{"/uploads/highlights/a.jpg"}, files.removed)
}

func TestService_Upsert_KeepsImageWithoutUpload(t *testing.T) {
	repo := newRepoStub(1)
	files := &filesStub{}
	svc := NewService(repo, files, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &models.UpsertRequest{CalendarID: 1, Image: upload("a.jpg")})
	require.NoError(t, err)

	resp, err := svc.Upsert(ctx, &models.UpsertRequest{CalendarID: 1, VideoURL: ptr.Ptr("https://youtu.be/x")})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/highlights/a.jpg", ptr.Deref(resp.ImagePath))
	assert.Empty(t, files.removed)
}

func TestService_Upsert_UnknownCalendarDayRemovesUploadedFile(t *testing.T) {
	files := &filesStub{}
	svc := NewService(newRepoStub(), files, logger.NewNop())

	_, err := svc.Upsert(context.Background(), &models.UpsertRequest{CalendarID: 99, Image: upload("a.jpg")})

	assert.ErrorIs(t, err, ErrCalendarDayNotFound)
	assert.Equal(t, files.saved, files.removed)
}

func TestService_Upsert_FileErrors(t *testing.T) {
	svc := NewService(newRepoStub(1), &filesStub{saveErr: filestore.ErrUnsupportedType}, logger.NewNop())
	_, err := svc.Upsert(context.Background(), &models.UpsertRequest{CalendarID: 1, Image: upload("a.gif")})
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	svc = NewService(newRepoStub(1), &filesStub{saveErr: filestore.ErrTooLarge}, logger.NewNop())
	_, err = svc.Upsert(context.Background(), &models.UpsertRequest{CalendarID: 1, Image: upload("a.jpg")})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = svc.Upsert(context.Background(), &models.UpsertRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByDate_Empty(t *testing.T) {
	svc := NewService(newRepoStub(), &filesStub{}, logger.NewNop())

	resp, err := svc.GetByDate(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestService_Delete(t *testing.T) {
	repo := newRepoStub(1)
	files := &filesStub{}
	svc := NewService(repo, files, logger.NewNop())
	ctx := context.Background()

	h, err := svc.Upsert(ctx, &models.UpsertRequest{CalendarID: 1, Image: upload("a.jpg")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, h.ID))
	assert.Equal(t, []string{"/uploads/highlights/a.jpg"}, files.removed)

	assert.ErrorIs(t, svc.Delete(ctx, h.ID), ErrHighlightNotFound)
}
