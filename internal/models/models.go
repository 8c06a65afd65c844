package models

import "time"

// Complaint statuses. Anything outside the closed set below still accepts
// community votes.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

// Vote types accepted on an open complaint.
const (
	VoteYes = "Yes"
	VoteNo  = "No"
	VoteIdk = "Idk"
)

type Complaint struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	ImageURL    string   `json:"image_url"`
	VoiceURL    *string  `json:"voice_url,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Department  string   `json:"department"`
	IssueType   string   `json:"issue_type"`

	Status                  string  `json:"status"`
	EstimatedCompletionTime *string `json:"estimated_completion_time,omitempty"`

	SeverityScore       float64 `json:"severity_score"`
	ConfidenceScore     float64 `json:"confidence_score"`
	DepartmentSuggested string  `json:"department_suggested"`

	YesVotes int `json:"yes_votes"`
	NoVotes  int `json:"no_votes"`
	IdkVotes int `json:"idk_votes"`
	Votes    int `json:"votes"`

	CommunityYesRatio      float64 `json:"community_yes_ratio"`
	DepartmentUrgencyIndex float64 `json:"department_urgency_index"`
	CriticalAreaWeight     float64 `json:"critical_area_weight"`
	PriorityScore          float64 `json:"priority_score"`

	UserFeedback       *string `json:"user_feedback,omitempty"`
	UserFeedbackRating *int    `json:"user_feedback_rating,omitempty"`

	ReporterID int64     `json:"reporter_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// VotingOpen reports whether the complaint still accepts community votes.
func (c Complaint) VotingOpen() bool {
	switch c.Status {
	case StatusResolved, StatusInProgress, StatusRejected:
		return false
	default:
		return true
	}
}

type Vote struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ComplaintID int64  `json:"complaint_id"`
	VoteType    string `json:"vote_type"`
}

// UrgencyMatrixEntry maps a (department, issue type) pair to its urgency
// index in [0,1]. Reference data, seeded at bootstrap.
type UrgencyMatrixEntry struct {
	Department   string  `json:"department"`
	IssueType    string  `json:"issue_type"`
	UrgencyIndex float64 `json:"urgency_index"`
}

// CriticalPlace is sensitive infrastructure (hospital, school, ...) used only
// for read-side proximity queries during scoring.
type CriticalPlace struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	PlaceType string  `json:"place_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weight    float64 `json:"weight"`
}

type User struct {
	ID          int64   `json:"id"`
	PhoneNumber string  `json:"phone_number"`
	Name        *string `json:"name,omitempty"`
	Area        *string `json:"area,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type Worker struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Status         string  `json:"status"`
	Phone          string  `json:"phone"`
	Location       string  `json:"location"`
	Rating         float64 `json:"rating"`
	ActiveTasks    int     `json:"active_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
}
