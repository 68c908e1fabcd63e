package hrclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ListProcesses trae los procesos de entrevista; departmentID vacío lista todos
func (c *Client) ListProcesses(ctx context.Context, departmentID kernel.DepartmentID) ([]hr.InterviewProcess, error) {
	path := "/interview-processes"
	if !departmentID.IsZero() {
		path += "?departmentId=" + url.QueryEscape(departmentID.String())
	}

	var processes []hr.InterviewProcess
	if err := c.get(ctx, path, &processes); err != nil {
		return nil, err
	}
	return processes, nil
}

func (c *Client) GetProcess(ctx context.Context, id kernel.ProcessID) (*hr.InterviewProcess, error) {
	var process hr.InterviewProcess
	if err := c.get(ctx, fmt.Sprintf("/interview-processes/%s", id), &process); err != nil {
		return nil, err
	}
	return &process, nil
}

func (c *Client) CreateProcess(ctx context.Context, req hr.CreateProcessRequest) (kernel.ProcessID, error) {
	id, err := c.postCreated(ctx, "/interview-processes", req)
	if err != nil {
		return "", err
	}
	return kernel.ProcessID(id), nil
}

func (c *Client) DeleteProcess(ctx context.Context, id kernel.ProcessID) error {
	return c.delete(ctx, fmt.Sprintf("/interview-processes/%s", id))
}

// GetApplicantProcess trae el proceso con los stages del candidato, en el
// orden del pipeline
func (c *Client) GetApplicantProcess(ctx context.Context, applicantID kernel.ApplicantID) (*hr.InterviewProcess, error) {
	var process hr.InterviewProcess
	if err := c.get(ctx, fmt.Sprintf("/cv-applicants/%s/interview-process", applicantID), &process); err != nil {
		return nil, err
	}
	return &process, nil
}

// ============================================================================
// Schedules y outcomes
// ============================================================================

func (c *Client) ListSchedules(ctx context.Context, applicantID kernel.ApplicantID) ([]hr.InterviewSchedule, error) {
	var schedules []hr.InterviewSchedule
	if err := c.get(ctx, fmt.Sprintf("/cv-applicants/%s/interview-schedules", applicantID), &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) GetSchedule(ctx context.Context, id kernel.ScheduleID) (*hr.InterviewSchedule, error) {
	var schedule hr.InterviewSchedule
	if err := c.get(ctx, fmt.Sprintf("/interview-schedules/%s", id), &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *Client) BookSchedule(ctx context.Context, req hr.BookScheduleRequest) (kernel.ScheduleID, error) {
	id, err := c.postCreated(ctx, "/interview-schedules", req)
	if err != nil {
		return "", err
	}
	return kernel.ScheduleID(id), nil
}

func (c *Client) GetOutcome(ctx context.Context, scheduleID kernel.ScheduleID) (*hr.InterviewOutcome, error) {
	var outcome hr.InterviewOutcome
	if err := c.get(ctx, fmt.Sprintf("/interview-schedules/%s/outcome", scheduleID), &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

func (c *Client) RecordOutcome(ctx context.Context, scheduleID kernel.ScheduleID, req hr.RecordOutcomeRequest) error {
	return c.post(ctx, fmt.Sprintf("/interview-schedules/%s/outcome", scheduleID), req, nil)
}
