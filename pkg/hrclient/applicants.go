package hrclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ListApplicants trae los CVs; positionID vacío lista todos
func (c *Client) ListApplicants(ctx context.Context, positionID kernel.PositionID) ([]hr.Applicant, error) {
	path := "/cv-applicants"
	if !positionID.IsZero() {
		path += "?positionId=" + url.QueryEscape(positionID.String())
	}

	var applicants []hr.Applicant
	if err := c.get(ctx, path, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

func (c *Client) GetApplicant(ctx context.Context, id kernel.ApplicantID) (*hr.Applicant, error) {
	var applicant hr.Applicant
	if err := c.get(ctx, fmt.Sprintf("/cv-applicants/%s", id), &applicant); err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (c *Client) CreateApplicant(ctx context.Context, req hr.CreateApplicantRequest) (kernel.ApplicantID, error) {
	id, err := c.postCreated(ctx, "/cv-applicants", req)
	if err != nil {
		return "", err
	}
	return kernel.ApplicantID(id), nil
}

// ChangeApplicantStatus mueve el CV en el pipeline; las transiciones ilegales
// las corta el servicio antes de llegar acá
func (c *Client) ChangeApplicantStatus(ctx context.Context, id kernel.ApplicantID, status hr.ApplicantStatus) error {
	body := map[string]int{"status": int(status)}
	return c.put(ctx, fmt.Sprintf("/cv-applicants/%s/status", id), body, nil)
}

func (c *Client) DeleteApplicant(ctx context.Context, id kernel.ApplicantID) error {
	return c.delete(ctx, fmt.Sprintf("/cv-applicants/%s", id))
}
