package service

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/store"
	"thrift_manager/internal/store/storetest"
	"thrift_manager/internal/utils"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestServices(t *testing.T, cache utils.Cache) (*Services, *gorm.DB) {
	t.Helper()
	gdb := storetest.NewDB(t)
	if cache == nil {
		cache = utils.NopCache{}
	}
	return New(store.New(gdb), cache, testSecret, time.Hour), gdb
}

func mustRegister(t *testing.T, svc *Services, email string) *domain.User {
	t.Helper()
	u, _, err := svc.Auth.Register(context.Background(), RegisterInput{Name: "Owner", Email: email, Password: "secret123"})
	require.NoError(t, err)
	return u
}

func ptr[T any](v T) *T { return &v }

func validThrift(name string) ThriftInput {
	return ThriftInput{
		Name:           name,
		StartDate:      "2024-01-01",
		AmountPerCycle: ptr(5000.0),
		Frequency:      "weekly",
		MaxMembers:     ptr(5),
	}
}
