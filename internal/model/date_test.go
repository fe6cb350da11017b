package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-15"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back))
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "2024-2-5", "15/02/2024", "2024-13-01", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-02-15"))
	assert.Equal(t, "2024-02-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-01")))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, d.Scan(time.Date(2024, time.April, 5, 13, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-04-05", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	d := NewDate(2024, time.February, 15)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", v)
}

func TestDatePatchAbsent(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"status":"done"}`), &patch))

	assert.False(t, patch.DueDate.Set)
	assert.False(t, patch.AssignedDate.Set)
	require.NotNil(t, patch.Status)
	assert.Equal(t, "done", *patch.Status)
	assert.Nil(t, patch.Title)
}

func TestDatePatchClear(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":""}`), &patch))
	assert.True(t, patch.DueDate.Set)
	assert.Nil(t, patch.DueDate.Value)

	patch = TaskPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":null}`), &patch))
	assert.True(t, patch.DueDate.Set)
	assert.Nil(t, patch.DueDate.Value)
}

func TestDatePatchValue(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"assigned_date":"2024-03-01"}`), &patch))

	assert.True(t, patch.AssignedDate.Set)
	require.NotNil(t, patch.AssignedDate.Value)
	assert.Equal(t, "2024-03-01", patch.AssignedDate.Value.String())
}

func TestDatePatchRejectsBadDate(t *testing.T) {
	var patch TaskPatch
	err := json.Unmarshal([]byte(`{"due_date":"not-a-date"}`), &patch)
	assert.Error(t, err)
}

func TestCreateRequestDateDecoding(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"title":"x","due_date":"","assigned_date":null}`), &req))
	assert.Nil(t, req.DueDate.Value)
	assert.Nil(t, req.AssignedDate.Value)

	req = CreateTaskRequest{}
	require.NoError(t, json.Unmarshal(
		[]byte(`{"title":"x","due_date":"2024-02-15"}`), &req))
	require.NotNil(t, req.DueDate.Value)
	assert.Equal(t, "2024-02-15", req.DueDate.Value.String())
	assert.Nil(t, req.AssignedDate.Value)
}

func TestTaskPatchIsZero(t *testing.T) {
	assert.True(t, TaskPatch{}.IsZero())

	s := "done"
	assert.False(t, TaskPatch{Status: &s}.IsZero())
	assert.False(t, TaskPatch{DueDate: DatePatch{Set: true}}.IsZero())
}

func TestValidEnums(t *testing.T) {
	for _, s := range []string{StatusTodo, StatusInProgress, StatusDone} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("blocked"))
	assert.False(t, ValidStatus(""))

	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		assert.True(t, ValidPriority(p), p)
	}
	assert.False(t, ValidPriority("critical"))
	assert.False(t, ValidPriority(""))
}

func TestTaskJSONNullDates(t *testing.T) {
	b, err := json.Marshal(Task{ID: 1, Title: "x"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	_, ok := m["due_date"]
	assert.True(t, ok)
	assert.Nil(t, m["due_date"])
	assert.Nil(t, m["assigned_date"])
}
