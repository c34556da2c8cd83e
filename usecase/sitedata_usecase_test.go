package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-site/domain/dto"
	"portfolio-site/domain/model"
	"portfolio-site/usecase"
)

func newSiteDataUseCase(mockRepo *MockYouTubeRepo, siteData *MockSiteData, channelID string) usecase.ISiteDataUseCase {
	store := newStore()
	var ytUC usecase.IYouTubeUseCase
	if mockRepo != nil {
		ytUC = usecase.NewYouTubeUseCase(mockRepo, siteData, store, channelID)
	} else {
		ytUC = usecase.NewYouTubeUseCase(nil, siteData, store, channelID)
	}
	if mockRepo == nil {
		return usecase.NewSiteDataUseCase(ytUC, nil, siteData, store, channelID)
	}
	return usecase.NewSiteDataUseCase(ytUC, mockRepo, siteData, store, channelID)
}

func TestSiteDataBuild_AssemblesPayload(t *testing.T) {
	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("GetChannel", mock.Anything, "UCbuild").
		Return(&model.YouTubeChannel{ID: "UCbuild", Title: "El1as.F", UploadsPlaylistID: "UUbuild"}, nil)
	mockRepo.On("ListUploads", mock.Anything, "UUbuild", "", int64(50)).
		Return(&model.UploadsPage{VideoIDs: []string{"l1", "s1", "l2"}}, nil)
	mockRepo.On("GetVideosByIDs", mock.Anything, []string{"l1", "s1", "l2"}).
		Return([]model.YouTubeVideo{longform("l1"), short("s1"), longform("l2")}, nil)
	mockRepo.On("GetMostViewed", mock.Anything, "UCbuild", int64(20)).
		Return([]model.YouTubeVideo{longform("viral"), short("viral-short")}, nil)

	uc := newSiteDataUseCase(mockRepo, staleSiteData(), "UCbuild")

	payload, err := uc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "El1as.F", payload.Channel.Title)
	assert.False(t, payload.GeneratedAt.IsZero())
	assert.Len(t, payload.LatestVideos, 2)
	assert.Len(t, payload.LatestShorts, 1)
	require.NotNil(t, payload.Featured.Long)
	assert.Equal(t, "viral", payload.Featured.Long.ID)
	require.NotNil(t, payload.Featured.Short)
	assert.Equal(t, "viral-short", payload.Featured.Short.ID)
}

func TestSiteDataBuild_FeaturedFallsBackToLatest(t *testing.T) {
	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("GetChannel", mock.Anything, "UCfb").
		Return(&model.YouTubeChannel{ID: "UCfb", UploadsPlaylistID: "UUfb"}, nil)
	mockRepo.On("ListUploads", mock.Anything, "UUfb", "", int64(50)).
		Return(&model.UploadsPage{VideoIDs: []string{"l1", "s1"}}, nil)
	mockRepo.On("GetVideosByIDs", mock.Anything, []string{"l1", "s1"}).
		Return([]model.YouTubeVideo{longform("l1"), short("s1")}, nil)
	// Empty ranking: featured falls back to the newest upload of each kind.
	mockRepo.On("GetMostViewed", mock.Anything, "UCfb", int64(20)).
		Return([]model.YouTubeVideo{}, nil)

	uc := newSiteDataUseCase(mockRepo, staleSiteData(), "UCfb")

	payload, err := uc.Build(context.Background())
	require.NoError(t, err)
	require.NotNil(t, payload.Featured.Long)
	assert.Equal(t, "l1", payload.Featured.Long.ID)
	require.NotNil(t, payload.Featured.Short)
	assert.Equal(t, "s1", payload.Featured.Short.ID)
}

func TestSiteDataBuild_UpstreamFailureFailsBuild(t *testing.T) {
	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("GetChannel", mock.Anything, "UCerr").
		Return(&model.YouTubeChannel{ID: "UCerr", UploadsPlaylistID: "UUerr"}, nil)
	mockRepo.On("ListUploads", mock.Anything, "UUerr", "", int64(50)).
		Return(nil, assert.AnError)
	mockRepo.On("GetMostViewed", mock.Anything, "UCerr", int64(20)).
		Return([]model.YouTubeVideo{}, nil).Maybe()

	uc := newSiteDataUseCase(mockRepo, staleSiteData(), "UCerr")

	payload, err := uc.Build(context.Background())
	require.Error(t, err)
	assert.Nil(t, payload)
}

func TestBuildAndSave_PersistsPayload(t *testing.T) {
	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("GetChannel", mock.Anything, "UCsave").
		Return(&model.YouTubeChannel{ID: "UCsave", UploadsPlaylistID: "UUsave"}, nil)
	mockRepo.On("ListUploads", mock.Anything, "UUsave", "", int64(50)).
		Return(&model.UploadsPage{VideoIDs: []string{"l1"}}, nil)
	mockRepo.On("GetVideosByIDs", mock.Anything, []string{"l1"}).
		Return([]model.YouTubeVideo{longform("l1")}, nil)
	mockRepo.On("GetMostViewed", mock.Anything, "UCsave", int64(20)).
		Return([]model.YouTubeVideo{}, nil)

	siteData := staleSiteData()
	siteData.On("Save", mock.AnythingOfType("*dto.SiteData")).Return(nil).Once()
	siteData.On("Path").Return("data/youtubeData.json")

	uc := newSiteDataUseCase(mockRepo, siteData, "UCsave")

	payload, err := uc.BuildAndSave(context.Background())
	require.NoError(t, err)
	require.NotNil(t, payload)
	siteData.AssertExpectations(t)
}

func TestGetSiteData_FreshFileWins(t *testing.T) {
	siteData := new(MockSiteData)
	siteData.On("IsFresh", mock.Anything).Return(true)
	siteData.On("Load").Return(&dto.SiteData{
		Channel:      &model.YouTubeChannel{Title: "From File"},
		LatestVideos: []model.YouTubeVideo{longform("l1")},
	}, nil)

	uc := newSiteDataUseCase(nil, siteData, "UCfile2")

	res, err := uc.GetSiteData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "site_data", res.ResolvedFrom)
	assert.Equal(t, "From File", res.Data.Channel.Title)
}

func TestGetSiteData_MockFallback(t *testing.T) {
	uc := newSiteDataUseCase(nil, staleSiteData(), "")

	res, err := uc.GetSiteData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mock", res.ResolvedFrom)
	require.NotNil(t, res.Data.Channel)
	assert.NotEmpty(t, res.Data.LatestVideos)
	assert.NotEmpty(t, res.Data.LatestShorts)
}
