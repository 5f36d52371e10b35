package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequestParsing(t *testing.T) {
	var req CreateTodoRequest
	err := json.Unmarshal([]byte(`{"title":"Buy milk","description":null,"task_date":"2026-02-19","task_time":"09:30"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", req.Title)
	assert.True(t, req.Description.Set())
	assert.Nil(t, req.Description.Ptr())
	assert.Equal(t, "2026-02-19", req.TaskDate.String())
	require.NotNil(t, req.TaskTime.Ptr())
	assert.Equal(t, "09:30:00", *req.TaskTime.Ptr(), "HH:MM normalizes to HH:MM:SS")
}

func TestTaskDateRejectsGarbage(t *testing.T) {
	var req CreateTodoRequest
	err := json.Unmarshal([]byte(`{"title":"x","task_date":"tomorrow"}`), &req)
	assert.Error(t, err)
}

func TestTaskDateEmptyMeansUnset(t *testing.T) {
	var req CreateTodoRequest
	err := json.Unmarshal([]byte(`{"title":"x","task_date":""}`), &req)
	require.NoError(t, err)
	assert.True(t, req.TaskDate.IsZero())
}

func TestTaskTimeRejectsGarbage(t *testing.T) {
	var req CreateTodoRequest
	err := json.Unmarshal([]byte(`{"title":"x","task_time":"half past nine"}`), &req)
	assert.Error(t, err)
}

func TestUpdateRequestDistinguishesAbsentAndNull(t *testing.T) {
	var absent UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &absent))
	assert.False(t, absent.Description.Set())
	assert.False(t, absent.TaskTime.Set())
	assert.Nil(t, absent.TaskDate)
	require.NotNil(t, absent.Completed)
	assert.True(t, *absent.Completed)

	var null UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":null,"task_time":null}`), &null))
	assert.True(t, null.Description.Set())
	assert.Nil(t, null.Description.Ptr())
	assert.True(t, null.TaskTime.Set())
	assert.Nil(t, null.TaskTime.Ptr())
}
