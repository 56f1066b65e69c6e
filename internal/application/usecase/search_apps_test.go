package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/bnema/synapse/internal/application/port/mocks"
	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCatalog() entity.AppCatalog {
	return entity.AppCatalog{
		"Internet":      {"Firefox": "firefox", "Thunderbird": "thunderbird"},
		"Dev Tools":     {"Visual Studio Code": "code"},
		"Utilities":     {"Files": "nautilus"},
		"Uncategorized": {},
	}
}

func TestSearchApps_FuzzyMatch(t *testing.T) {
	catalog := portmocks.NewMockAppCatalog(gomock.NewController(t))
	catalog.EXPECT().ListApps(gomock.Any()).Return(testCatalog(), nil)

	results, err := usecase.NewSearchAppsUseCase(catalog).Search(testContext(), "fire", 0)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, entity.AppEntry{Category: "Internet", Name: "Firefox", Command: "firefox"}, results[0])
}

func TestSearchApps_EmptyQueryListsAllSorted(t *testing.T) {
	catalog := portmocks.NewMockAppCatalog(gomock.NewController(t))
	catalog.EXPECT().ListApps(gomock.Any()).Return(testCatalog(), nil)

	results, err := usecase.NewSearchAppsUseCase(catalog).Search(testContext(), "", 3)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Files", results[0].Name)
	assert.Equal(t, "Firefox", results[1].Name)
	assert.Equal(t, "Thunderbird", results[2].Name)
}

func TestSearchApps_NoMatch(t *testing.T) {
	catalog := portmocks.NewMockAppCatalog(gomock.NewController(t))
	catalog.EXPECT().ListApps(gomock.Any()).Return(testCatalog(), nil)

	results, err := usecase.NewSearchAppsUseCase(catalog).Search(testContext(), "zzzz", 0)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchApps_CatalogError(t *testing.T) {
	catalog := portmocks.NewMockAppCatalog(gomock.NewController(t))
	catalog.EXPECT().ListApps(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := usecase.NewSearchAppsUseCase(catalog).Search(testContext(), "x", 0)

	assert.Error(t, err)
}
