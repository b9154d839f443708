package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/sbilibin2017/lnbits-gallery/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPaywallService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMinter := services.NewMockPaywallMinter(ctrl)
	mockReader := services.NewMockPaywallRecordReader(ctrl)
	mockWriter := services.NewMockPaywallRecordWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewPaywallService(mockMinter, mockReader, mockWriter, mockKafka, 1000)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "img123").Return(nil, nil)
	mockMinter.EXPECT().
		CreatePaywall(gomock.Any(), "https://host/img123.jpg", "gallery_img123", int64(1000)).
		Return("https://lnbits/paywall/abc", nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "img123", "https://host/img123.jpg", "https://lnbits/paywall/abc").
		Return(&models.PaywallDB{PublicID: "img123", PaywallURL: "https://lnbits/paywall/abc"}, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	record, err := svc.Create(context.Background(), "img123", "https://host/img123.jpg", "root")
	assert.NoError(t, err)
	assert.Equal(t, "https://lnbits/paywall/abc", record.PaywallURL)
}

func TestPaywallService_Create_ExistingRecordIsNotReminted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMinter := services.NewMockPaywallMinter(ctrl)
	mockReader := services.NewMockPaywallRecordReader(ctrl)
	mockWriter := services.NewMockPaywallRecordWriter(ctrl)
	svc := services.NewPaywallService(mockMinter, mockReader, mockWriter, nil, 1000)

	existing := &models.PaywallDB{PublicID: "img123", PaywallURL: "https://lnbits/paywall/old"}
	mockReader.EXPECT().GetByPublicID(gomock.Any(), "img123").Return(existing, nil)

	// No mint, no insert
	record, err := svc.Create(context.Background(), "img123", "https://host/img123.jpg", "root")
	assert.NoError(t, err)
	assert.Equal(t, existing, record)
}

func TestPaywallService_Create_MintFailurePersistsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMinter := services.NewMockPaywallMinter(ctrl)
	mockReader := services.NewMockPaywallRecordReader(ctrl)
	mockWriter := services.NewMockPaywallRecordWriter(ctrl)
	svc := services.NewPaywallService(mockMinter, mockReader, mockWriter, nil, 1000)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "img123").Return(nil, nil)
	mockMinter.EXPECT().
		CreatePaywall(gomock.Any(), "https://host/img123.jpg", "gallery_img123", int64(1000)).
		Return("", errors.New("payment API unreachable"))

	// Save is never called
	record, err := svc.Create(context.Background(), "img123", "https://host/img123.jpg", "root")
	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestPaywallService_Create_PersistFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMinter := services.NewMockPaywallMinter(ctrl)
	mockReader := services.NewMockPaywallRecordReader(ctrl)
	mockWriter := services.NewMockPaywallRecordWriter(ctrl)
	svc := services.NewPaywallService(mockMinter, mockReader, mockWriter, nil, 1000)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "img123").Return(nil, nil)
	mockMinter.EXPECT().
		CreatePaywall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://lnbits/paywall/abc", nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "img123", "https://host/img123.jpg", "https://lnbits/paywall/abc").
		Return(nil, errors.New("db down"))

	record, err := svc.Create(context.Background(), "img123", "https://host/img123.jpg", "root")
	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestPaywallService_Create_KafkaFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMinter := services.NewMockPaywallMinter(ctrl)
	mockReader := services.NewMockPaywallRecordReader(ctrl)
	mockWriter := services.NewMockPaywallRecordWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewPaywallService(mockMinter, mockReader, mockWriter, mockKafka, 1000)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "img123").Return(nil, nil)
	mockMinter.EXPECT().
		CreatePaywall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://lnbits/paywall/abc", nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.PaywallDB{PublicID: "img123"}, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	record, err := svc.Create(context.Background(), "img123", "https://host/img123.jpg", "root")
	assert.NoError(t, err)
	assert.NotNil(t, record)
}

func TestPaywallService_Create_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMinter := services.NewMockPaywallMinter(ctrl)
	mockReader := services.NewMockPaywallRecordReader(ctrl)
	mockWriter := services.NewMockPaywallRecordWriter(ctrl)
	svc := services.NewPaywallService(mockMinter, mockReader, mockWriter, nil, 500)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "img9").Return(nil, nil)
	mockMinter.EXPECT().
		CreatePaywall(gomock.Any(), "https://host/img9.jpg", "gallery_img9", int64(500)).
		Return("https://lnbits/paywall/xyz", nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "img9", "https://host/img9.jpg", "https://lnbits/paywall/xyz").
		Return(&models.PaywallDB{PublicID: "img9"}, nil)

	record, err := svc.Create(context.Background(), "img9", "https://host/img9.jpg", "root")
	assert.NoError(t, err)
	assert.NotNil(t, record)
}
