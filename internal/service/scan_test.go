package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"qrlink/internal/model"
	"qrlink/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"qrlink/internal/mocks"
)

func TestScanService_RecordScan(t *testing.T) {
	ownerID := "owner-1"
	res := &repository.CachedResolution{
		LinkID:         7,
		Identifier:     "aB3dE5fG",
		DestinationURL: "https://example.com",
		OwnerID:        &ownerID,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinks := mocks.NewMockLinkRepositoryInterface(ctrl)
	mockAccounts := mocks.NewMockAccountRepositoryInterface(ctrl)
	mockProducer := mocks.NewMockProducerInterface(ctrl)

	ts := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	mockLinks.EXPECT().RecordScan(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, event *model.ScanEvent) error {
			assert.Equal(t, ts, event.Timestamp)
			assert.Equal(t, "iPhone", event.UserAgent)
			assert.Equal(t, "US", event.Country)
			return nil
		})
	mockAccounts.EXPECT().IncrementMonthlyScans(gomock.Any(), ownerID).Return(nil)
	mockProducer.EXPECT().SendScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *model.ScanMessage) error {
			assert.Equal(t, "aB3dE5fG", msg.Identifier)
			assert.Equal(t, int64(7), msg.LinkID)
			return nil
		})

	svc := NewScanService(mockLinks, mockAccounts, mockProducer)

	err := svc.RecordScan(context.Background(), res, &model.ScanMeta{
		UserAgent: "iPhone",
		IPAddress: "203.0.113.9",
		Country:   "US",
		Timestamp: ts,
	})

	assert.NoError(t, err)
}

func TestScanService_RecordScan_TruncatesMetadata(t *testing.T) {
	res := &repository.CachedResolution{LinkID: 7, Identifier: "aB3dE5fG"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinks := mocks.NewMockLinkRepositoryInterface(ctrl)
	mockLinks.EXPECT().RecordScan(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, event *model.ScanEvent) error {
			assert.Len(t, event.UserAgent, model.MaxMetadataLength)
			assert.Len(t, event.Referrer, model.MaxMetadataLength)
			return nil
		})

	svc := NewScanService(mockLinks, mocks.NewMockAccountRepositoryInterface(ctrl), nil)

	err := svc.RecordScan(context.Background(), res, &model.ScanMeta{
		UserAgent: strings.Repeat("u", model.MaxMetadataLength+50),
		Referrer:  strings.Repeat("r", model.MaxMetadataLength+50),
	})

	assert.NoError(t, err)
}

func TestScanService_RecordScan_AnonymousSkipsUsage(t *testing.T) {
	res := &repository.CachedResolution{LinkID: 7, Identifier: "aB3dE5fG"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinks := mocks.NewMockLinkRepositoryInterface(ctrl)
	mockLinks.EXPECT().RecordScan(gomock.Any(), int64(7), gomock.Any()).Return(nil)
	// No IncrementMonthlyScans expectation: anonymous links have no owner

	svc := NewScanService(mockLinks, mocks.NewMockAccountRepositoryInterface(ctrl), nil)

	assert.NoError(t, svc.RecordScan(context.Background(), res, &model.ScanMeta{}))
}

func TestScanService_RecordScan_StoreFailureIsFatal(t *testing.T) {
	res := &repository.CachedResolution{LinkID: 7, Identifier: "aB3dE5fG"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinks := mocks.NewMockLinkRepositoryInterface(ctrl)
	mockLinks.EXPECT().RecordScan(gomock.Any(), int64(7), gomock.Any()).Return(errors.New("db down"))

	svc := NewScanService(mockLinks, mocks.NewMockAccountRepositoryInterface(ctrl), nil)

	assert.Error(t, svc.RecordScan(context.Background(), res, &model.ScanMeta{}))
}

func TestScanService_RecordScan_BestEffortFailuresSwallowed(t *testing.T) {
	ownerID := "owner-1"
	res := &repository.CachedResolution{LinkID: 7, Identifier: "aB3dE5fG", OwnerID: &ownerID}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinks := mocks.NewMockLinkRepositoryInterface(ctrl)
	mockAccounts := mocks.NewMockAccountRepositoryInterface(ctrl)
	mockProducer := mocks.NewMockProducerInterface(ctrl)

	mockLinks.EXPECT().RecordScan(gomock.Any(), int64(7), gomock.Any()).Return(nil)
	mockAccounts.EXPECT().IncrementMonthlyScans(gomock.Any(), ownerID).Return(errors.New("usage down"))
	mockProducer.EXPECT().SendScan(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))

	svc := NewScanService(mockLinks, mockAccounts, mockProducer)

	assert.NoError(t, svc.RecordScan(context.Background(), res, &model.ScanMeta{}))
}

func TestScanService_RecordScan_ZeroTimestampDefaults(t *testing.T) {
	res := &repository.CachedResolution{LinkID: 7, Identifier: "aB3dE5fG"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	before := time.Now().UTC()
	mockLinks := mocks.NewMockLinkRepositoryInterface(ctrl)
	mockLinks.EXPECT().RecordScan(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, event *model.ScanEvent) error {
			assert.False(t, event.Timestamp.Before(before))
			return nil
		})

	svc := NewScanService(mockLinks, mocks.NewMockAccountRepositoryInterface(ctrl), nil)

	assert.NoError(t, svc.RecordScan(context.Background(), res, &model.ScanMeta{}))
}
