// Package entity defines the fixed output records produced by the Medium
// access layer, along with the domain error types shared across the
// application. Every record is a value object: constructed once from a
// single upstream response, serialized, and discarded.
package entity

// UserProfile represents a Medium user profile.
//
// UserID, Username, Fullname and FollowersCount are always populated.
// Every other field degrades to a type-appropriate empty value (nil,
// "", 0, false) when the upstream source omits it; no field is ever
// dropped from the serialized output.
type UserProfile struct {
	UserID                  string  `json:"user_id"`
	Username                string  `json:"username"`
	Fullname                string  `json:"fullname"`
	Bio                     *string `json:"bio"`
	FollowersCount          int     `json:"followers_count"`
	FollowingCount          int     `json:"following_count"`
	TwitterUsername         *string `json:"twitter_username"`
	ImageURL                *string `json:"image_url"`
	MediumMemberAt          string  `json:"medium_member_at"`
	IsWriterProgramEnrolled bool    `json:"is_writer_program_enrolled"`
	HasList                 bool    `json:"has_list"`
	IsSuspended             bool    `json:"is_suspended"`
}
