/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/service/mocks"
	"github.com/mapstack/atlas/manager/types"
)

var (
	mockReleaseInfo = types.ReleaseInfo{
		VersionNumber: 3,
		ReleaseID:     "rel-0003-20250612180021",
		ReleaseURL:    "https://cdn.example.com/palm-hills/rel-0003-20250612180021",
		PublishedBy:   "editor",
		IsCurrent:     true,
	}
	mockGetReleasesResponse = &types.GetReleasesResponse{
		ProjectSlug:      "palm-hills",
		CurrentReleaseID: "rel-0003-20250612180021",
		Releases:         []types.ReleaseInfo{mockReleaseInfo},
		Total:            1,
	}
	mockCurrentReleaseResponse = &types.CurrentReleaseResponse{
		ReleaseInfo:  mockReleaseInfo,
		ManifestPath: "releases/palm-hills/rel-0003-20250612180021/manifest.json",
		ManifestURL:  "https://cdn.example.com/palm-hills/rel-0003-20250612180021/manifest.json",
	}
	// JSON numbers decode as float64, so the fixture keeps the manifest
	// values comparable after the round trip.
	mockReleaseManifest = models.JSONMap{
		"release_id": "rel-0003-20250612180021",
		"version":    float64(3),
	}
)

func mockReleaseRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	apiv1 := r.Group("/api/v1")
	p := apiv1.Group("/projects")
	p.GET(":id/releases", h.GetReleases)
	p.GET(":id/releases/:release_id", h.GetRelease)
	return r
}

func TestHandlers_GetReleases(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/test/releases", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/releases", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetReleases(gomock.Any(), gomock.Eq(uint(2))).Return(mockGetReleasesResponse, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				response := types.GetReleasesResponse{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(err)
				assert.Equal(*mockGetReleasesResponse, response)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockReleaseRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetRelease(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/test/releases/current", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success with current release",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/releases/current", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetCurrentRelease(gomock.Any(), gomock.Eq(uint(2))).Return(mockCurrentReleaseResponse, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				response := types.CurrentReleaseResponse{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(err)
				assert.Equal(*mockCurrentReleaseResponse, response)
			},
		},
		{
			name: "success with release manifest",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/releases/rel-0003-20250612180021", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetReleaseManifest(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq("rel-0003-20250612180021")).Return(mockReleaseManifest, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				manifest := models.JSONMap{}
				err := json.Unmarshal(w.Body.Bytes(), &manifest)
				assert.NoError(err)
				assert.Equal(mockReleaseManifest, manifest)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockReleaseRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
