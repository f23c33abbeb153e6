package dto

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"demandsurvey/internal/domain/demand"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/mapper"
)

// RoleLabel returns the display label for a role, e.g. "Customer".
// A Caser is stateful, so one is built per call.
func RoleLabel(role survey.Role) string {
	return cases.Title(language.English).String(string(role))
}

// SubmitSurveyRequest is the one-shot intake body. Field rules are applied by
// the survey validator so that every invalid field is reported at once.
type SubmitSurveyRequest struct {
	Name      string   `json:"name"`
	Mobile    string   `json:"mobile"`
	Location  string   `json:"location"`
	SubRegion string   `json:"sub_region"`
	Role      string   `json:"role"`
	Items     []string `json:"items"`
}

func (r SubmitSurveyRequest) ToRaw() survey.RawSubmission {
	return survey.RawSubmission{
		Name:      r.Name,
		Mobile:    r.Mobile,
		Location:  r.Location,
		SubRegion: r.SubRegion,
		Role:      r.Role,
		Items:     r.Items,
	}
}

type SubmitResult struct {
	ResponseID      uint      `json:"response_id"`
	ItemCount       int       `json:"item_count"`
	CreatedAt       time.Time `json:"created_at"`
	ConfirmationTTL int       `json:"confirmation_ttl_seconds"`
}

type ItemDTO struct {
	ID       uint   `json:"id"`
	ItemName string `json:"item_name"`
	ItemType string `json:"item_type"`
}

type ResponseDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Mobile    string     `json:"mobile"`
	Location  string     `json:"location"`
	SubRegion int        `json:"sub_region"`
	Role      string     `json:"role"`
	RoleLabel string     `json:"role_label"`
	Items     []*ItemDTO `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ResponseListDTO struct {
	Scope     string         `json:"scope"`
	Responses []*ResponseDTO `json:"responses"`
	Locations []string       `json:"locations"`
}

type UpdateResponseRequest struct {
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Location  string `json:"location"`
	SubRegion string `json:"sub_region"`
	Role      string `json:"role"`
}

type DemandEntryDTO struct {
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
}

type DemandReportDTO struct {
	Scope          string            `json:"scope"`
	TotalResponses int               `json:"total_responses"`
	LocationCount  int               `json:"location_count"`
	UniqueItems    int               `json:"unique_items"`
	Top            []*DemandEntryDTO `json:"top"`
	Locations      []string          `json:"locations"`
}

type DraftDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Role           string    `json:"role"`
	Location       string    `json:"location"`
	SubRegion      int       `json:"sub_region,omitempty"`
	Slots          []string  `json:"slots"`
	CommittedItems []string  `json:"committed_items"`
	Confirmed      bool      `json:"confirmed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpdateDraftRequest struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
	Role   *string `json:"role"`
}

type SelectLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

type SelectSubRegionRequest struct {
	SubRegion int `json:"sub_region" binding:"required,gte=1"`
}

type UpdateSlotRequest struct {
	Text string `json:"text"`
}

func ToItemDTO(m *survey.ItemMention) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{ID: m.ID(), ItemName: m.ItemName(), ItemType: m.ItemType()}
}

func ToResponseDTO(r *survey.Response) *ResponseDTO {
	if r == nil {
		return nil
	}
	respondent := r.Respondent()
	items := mapper.MapSliceOrEmpty(r.Items(), ToItemDTO)
	return &ResponseDTO{
		ID:        r.ID(),
		Name:      respondent.Name,
		Mobile:    respondent.Mobile,
		Location:  respondent.Location,
		SubRegion: respondent.SubRegion,
		Role:      respondent.Role.String(),
		RoleLabel: RoleLabel(respondent.Role),
		Items:     items,
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func ToResponseDTOs(responses []*survey.Response) []*ResponseDTO {
	return mapper.MapSliceOrEmpty(responses, ToResponseDTO)
}

func ToDemandEntryDTOs(entries []demand.Entry) []*DemandEntryDTO {
	out := make([]*DemandEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &DemandEntryDTO{ItemName: e.ItemName, Count: e.Count})
	}
	return out
}

func ToDraftDTO(d *survey.Draft, now time.Time) *DraftDTO {
	if d == nil {
		return nil
	}
	sel := d.Selection()
	return &DraftDTO{
		ID:             d.ID(),
		Name:           d.Name(),
		Mobile:         d.Mobile(),
		Role:           d.Role(),
		Location:       sel.Location(),
		SubRegion:      sel.SubRegion(),
		Slots:          d.Slots(),
		CommittedItems: d.Raw().Items,
		Confirmed:      d.IsConfirmed(now),
		UpdatedAt:      d.UpdatedAt(),
	}
}
