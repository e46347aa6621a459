//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"
	"time"

	"studio-booking/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContact(t *testing.T) reservation.Contact {
	t.Helper()
	c, err := reservation.NewContact(" Anna Nowak ", "anna@example.test", "+48 600 000 000")
	require.NoError(t, err)
	return c
}

func TestNewReservation(t *testing.T) {
	date := time.Date(2030, 6, 15, 12, 30, 0, 0, time.UTC)

	t.Run("コードとパスワードを払い出して保留で始まる", func(t *testing.T) {
		price := " 450 zł "
		r, err := reservation.NewReservation(uuid.New(), date, mustContact(t), nil, &price, nil)
		require.NoError(t, err)

		assert.Len(t, r.Code().Value(), reservation.CodeLength)
		assert.Len(t, r.Password().Value(), reservation.PasswordLength)
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, "Anna Nowak", r.Contact().Name())
		assert.Equal(t, reservation.Answers{}, r.Answers())
		require.NotNil(t, r.TotalPrice())
		assert.Equal(t, "450 zł", *r.TotalPrice())

		_, err = reservation.ParseCode(r.Code().Value())
		assert.NoError(t, err)
	})

	t.Run("空白だけの価格はnil", func(t *testing.T) {
		blank := "  "
		r, err := reservation.NewReservation(uuid.New(), date, mustContact(t), nil, &blank, nil)
		require.NoError(t, err)
		assert.Nil(t, r.TotalPrice())
	})

	t.Run("必須項目", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.Nil, date, mustContact(t), nil, nil, nil)
		assert.ErrorIs(t, err, reservation.ErrMissingOffer)

		_, err = reservation.NewReservation(uuid.New(), time.Time{}, mustContact(t), nil, nil, nil)
		assert.ErrorIs(t, err, reservation.ErrMissingDate)
	})

	t.Run("コードは毎回異なる", func(t *testing.T) {
		seen := map[string]struct{}{}
		for i := 0; i < 50; i++ {
			r, err := reservation.NewReservation(uuid.New(), date, mustContact(t), nil, nil, nil)
			require.NoError(t, err)
			seen[r.Code().Value()] = struct{}{}
		}
		assert.Len(t, seen, 50)
	})
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{name: "そのまま", input: "abc123def4", want: "abc123def4"},
		{name: "大文字と空白を正規化", input: "  ABC123DEF4\n", want: "abc123def4"},
		{name: "短すぎる", input: "abc123", err: reservation.ErrInvalidCode},
		{name: "記号を含む", input: "abc-23def4", err: reservation.ErrInvalidCode},
		{name: "空", input: "", err: reservation.ErrInvalidCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reservation.ParseCode(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestPassword_Matches(t *testing.T) {
	p := reservation.ReconstructPassword("x1y2z3")

	assert.True(t, p.Matches("x1y2z3"))
	assert.True(t, p.Matches(" X1Y2Z3 "))
	assert.False(t, p.Matches("x1y2z"))
	assert.False(t, p.Matches(""))
	assert.False(t, reservation.ReconstructPassword("").Matches(""))
}

func TestNewContact(t *testing.T) {
	tests := []struct {
		name                string
		cname, email, phone string
		err                 error
	}{
		{name: "名前なし", cname: " ", email: "a@example.test", phone: "1", err: reservation.ErrMissingClientName},
		{name: "不正なメール", cname: "A", email: "a@b", phone: "1", err: reservation.ErrInvalidClientEmail},
		{name: "電話なし", cname: "A", email: "a@example.test", phone: "", err: reservation.ErrMissingClientPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reservation.NewContact(tt.cname, tt.email, tt.phone)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestAnswers_JSON(t *testing.T) {
	t.Run("質問の順序を保つ", func(t *testing.T) {
		var a reservation.Answers
		require.NoError(t, json.Unmarshal([]byte(`{"Ile osób?":"3","Czy z psem?":"tak","A":""}`), &a))

		want := reservation.Answers{
			{Question: "Ile osób?", Answer: "3"},
			{Question: "Czy z psem?", Answer: "tak"},
			{Question: "A", Answer: ""},
		}
		if diff := cmp.Diff(want, a); diff != "" {
			t.Errorf("Answers mismatch (-want +got):\n%s", diff)
		}

		encoded, err := a.Encode()
		require.NoError(t, err)
		assert.Equal(t, `{"Ile osób?":"3","Czy z psem?":"tak","A":""}`, encoded)
	})

	t.Run("空文字は空の回答", func(t *testing.T) {
		a, err := reservation.DecodeAnswers("")
		require.NoError(t, err)
		assert.Equal(t, reservation.Answers{}, a)

		encoded, err := a.Encode()
		require.NoError(t, err)
		assert.Equal(t, "{}", encoded)
	})

	t.Run("文字列以外の値は拒否", func(t *testing.T) {
		_, err := reservation.DecodeAnswers(`{"Ile osób?":3}`)
		assert.ErrorIs(t, err, reservation.ErrInvalidAnswers)

		_, err = reservation.DecodeAnswers(`["a"]`)
		assert.ErrorIs(t, err, reservation.ErrInvalidAnswers)
	})
}

func TestReservation_ApplyDetails(t *testing.T) {
	date := time.Date(2030, 6, 15, 12, 30, 0, 0, time.UTC)
	newReservation := func(t *testing.T) *reservation.Reservation {
		r, err := reservation.NewReservation(uuid.New(), date, mustContact(t), nil, nil, nil)
		require.NoError(t, err)
		return r
	}

	t.Run("日付変更を報告する", func(t *testing.T) {
		r := newReservation(t)
		moved := date.Add(24 * time.Hour)

		changed, err := r.ApplyDetails(reservation.Details{Date: &moved})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, moved, r.Date())
	})

	t.Run("同じ時刻は変更扱いしない", func(t *testing.T) {
		r := newReservation(t)
		same := date.In(time.FixedZone("CEST", 2*60*60))

		changed, err := r.ApplyDetails(reservation.Details{Date: &same})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("連絡先の部分更新", func(t *testing.T) {
		r := newReservation(t)
		phone := "+48 700 000 000"

		changed, err := r.ApplyDetails(reservation.Details{ClientPhone: &phone})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, phone, r.Contact().Phone())
		assert.Equal(t, "anna@example.test", r.Contact().Email())
	})

	t.Run("不正なメールなら何も変えない", func(t *testing.T) {
		r := newReservation(t)
		bad := "nope"
		moved := date.Add(time.Hour)

		_, err := r.ApplyDetails(reservation.Details{ClientEmail: &bad, Date: &moved})
		assert.ErrorIs(t, err, reservation.ErrInvalidClientEmail)
		assert.Equal(t, date, r.Date())
	})

	t.Run("空の差分", func(t *testing.T) {
		assert.True(t, reservation.Details{}.IsEmpty())
	})
}

func TestReservation_ChangeStatus(t *testing.T) {
	r, err := reservation.NewReservation(uuid.New(), time.Now(), mustContact(t), nil, nil, nil)
	require.NoError(t, err)

	require.NoError(t, r.ChangeStatus(reservation.StatusCancelled))
	require.NoError(t, r.ChangeStatus(reservation.StatusPending))
	assert.ErrorIs(t, r.ChangeStatus("archived"), reservation.ErrInvalidStatus)
	assert.Equal(t, reservation.StatusPending, r.Status())

	_, err = reservation.NewStatus("confirmed")
	assert.NoError(t, err)
}
