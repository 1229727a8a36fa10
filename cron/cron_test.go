package cron

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gislain231/greenshare/db"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	db.DB = gdb
	return mock
}

func captureMail(t *testing.T) *[]string {
	t.Helper()
	var sent []string
	orig := sendMail
	sendMail = func(to, subject, body string) error {
		sent = append(sent, to)
		return nil
	}
	t.Cleanup(func() { sendMail = orig })
	return &sent
}

func TestApprovePendingProvidersFlipsAgedRegistrations(t *testing.T) {
	mock := newMockDB(t)
	sent := captureMail(t)

	created := time.Now().Add(-10 * time.Minute)
	mock.ExpectQuery(`SELECT \* FROM "business_details" WHERE \(?approved`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "business_name", "email", "approved", "created_at"}).
			AddRow(11, 5, "EcoWash", "wash@green.com", false, created).
			AddRow(12, 6, "ShineDetail", "shine@green.com", false, created))

	for range []int{11, 12} {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "business_details" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	ApprovePendingProviders(2 * time.Minute)

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"wash@green.com", "shine@green.com"}, *sent)
}

func TestApprovePendingProvidersLeavesFreshRegistrationsAlone(t *testing.T) {
	mock := newMockDB(t)
	sent := captureMail(t)

	mock.ExpectQuery(`SELECT \* FROM "business_details" WHERE \(?approved`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "business_name", "email", "approved"}))

	ApprovePendingProviders(2 * time.Minute)

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, *sent)
}

func TestSendBookingRemindersMailsTomorrowsBookings(t *testing.T) {
	mock := newMockDB(t)
	sent := captureMail(t)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE \(?status`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "provider", "service", "full_name", "email", "service_date", "status"}).
			AddRow(1, "BK1700000000000ABCDE", "EcoWash", "Full Detailing", "Jane Doe", "jane@example.com", tomorrow, "confirmed"))

	SendBookingReminders()

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"jane@example.com"}, *sent)
}

func TestApprovalDelayDefaultsWhenUnset(t *testing.T) {
	t.Setenv("PROVIDER_APPROVAL_DELAY", "")
	assert.Equal(t, 2*time.Minute, ApprovalDelay())

	t.Setenv("PROVIDER_APPROVAL_DELAY", "30s")
	assert.Equal(t, 30*time.Second, ApprovalDelay())
}
