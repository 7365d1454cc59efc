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
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/service/mocks"
	"github.com/mapstack/atlas/manager/types"
)

var (
	mockUploadURLReqBody = `
		{
		   "filename": "master-plan.png",
		   "asset_type": "base_map",
		   "content_type": "image/png"
		}`
	mockConfirmAssetReqBody = `
		{
		   "storage_path": "projects/2/assets/base_map/master-plan.png",
		   "asset_type": "base_map",
		   "filename": "master-plan.png",
		   "file_size": 1024
		}`
	mockCreateUploadURLRequest = types.CreateUploadURLRequest{
		Filename:    "master-plan.png",
		AssetType:   "base_map",
		ContentType: "image/png",
	}
	mockConfirmAssetRequest = types.ConfirmAssetRequest{
		StoragePath: "projects/2/assets/base_map/master-plan.png",
		AssetType:   "base_map",
		Filename:    "master-plan.png",
		FileSize:    1024,
	}
	mockUploadURLResponse = &types.UploadURLResponse{
		UploadURL:        "https://objects.example.com/upload",
		StoragePath:      "projects/2/assets/base_map/master-plan.png",
		ExpiresInSeconds: 300,
	}
	mockAssetModel = &models.Asset{
		BaseModel:        mockBaseModel,
		ProjectID:        2,
		AssetType:        "base_map",
		Filename:         "master-plan.png",
		MimeType:         "image/png",
		FileSize:         1024,
		StoragePath:      "projects/2/assets/base_map/master-plan.png",
		ProcessingStatus: "completed",
	}
)

func mockAssetRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	apiv1 := r.Group("/api/v1")
	p := apiv1.Group("/projects")
	p.POST(":id/assets/upload-url", h.CreateUploadURL)
	p.POST(":id/assets", h.ConfirmAsset)
	p.GET(":id/assets", h.GetAssets)
	a := apiv1.Group("/assets")
	a.GET(":id", h.GetAsset)
	a.GET(":id/download", h.DownloadAsset)
	a.DELETE(":id", h.DestroyAsset)
	return r
}

func TestHandlers_CreateUploadURL(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity caused by uri",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/test/assets/upload-url", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unprocessable entity caused by body",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/assets/upload-url", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/assets/upload-url", strings.NewReader(mockUploadURLReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateUploadURL(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(mockCreateUploadURLRequest)).Return(mockUploadURLResponse, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				response := types.UploadURLResponse{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(err)
				assert.Equal(*mockUploadURLResponse, response)
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
			mockRouter := mockAssetRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ConfirmAsset(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/assets", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/assets", strings.NewReader(mockConfirmAssetReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ConfirmAsset(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(mockConfirmAssetRequest)).Return(mockAssetModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				asset := models.Asset{}
				err := json.Unmarshal(w.Body.Bytes(), &asset)
				assert.NoError(err)
				assert.Equal(*mockAssetModel, asset)
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
			mockRouter := mockAssetRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetAsset(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/assets/test", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/assets/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetAsset(gomock.Any(), gomock.Eq(uint(2))).Return(mockAssetModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				asset := models.Asset{}
				err := json.Unmarshal(w.Body.Bytes(), &asset)
				assert.NoError(err)
				assert.Equal(*mockAssetModel, asset)
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
			mockRouter := mockAssetRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetAssets(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/assets?asset_type=video", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/projects/2/assets?asset_type=base_map", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetAssets(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(types.GetAssetsQuery{
					AssetType: "base_map",
					Page:      1,
					PerPage:   10,
				})).Return([]models.Asset{*mockAssetModel}, int64(1), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				var assets []models.Asset
				err := json.Unmarshal(w.Body.Bytes(), &assets)
				assert.NoError(err)
				assert.Equal([]models.Asset{*mockAssetModel}, assets)
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
			mockRouter := mockAssetRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_DownloadAsset(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/assets/test/download", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/assets/2/download", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetAssetDownloadURL(gomock.Any(), gomock.Eq(uint(2))).Return(&types.AssetDownloadResponse{
					DownloadURL:      "https://objects.example.com/download",
					ExpiresInSeconds: 300,
				}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				response := types.AssetDownloadResponse{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(err)
				assert.Equal("https://objects.example.com/download", response.DownloadURL)
				assert.Equal(300, response.ExpiresInSeconds)
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
			mockRouter := mockAssetRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_DestroyAsset(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodDelete, "/api/v1/assets/test", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodDelete, "/api/v1/assets/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.DestroyAsset(gomock.Any(), gomock.Eq(uint(2))).Return(nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
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
			mockRouter := mockAssetRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
