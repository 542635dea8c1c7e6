// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/saketh8887/medconnect/ent/inquiry"
	"github.com/saketh8887/medconnect/ent/llmrequestevent"
	"github.com/saketh8887/medconnect/ent/preference"
	"github.com/saketh8887/medconnect/ent/schema"
	"github.com/saketh8887/medconnect/ent/studysession"
	"github.com/saketh8887/medconnect/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	inquiryFields := schema.Inquiry{}.Fields()
	_ = inquiryFields
	// inquiryDescCreatedAt is the schema descriptor for created_at field.
	inquiryDescCreatedAt := inquiryFields[7].Descriptor()
	// inquiry.DefaultCreatedAt holds the default value on creation for the created_at field.
	inquiry.DefaultCreatedAt = inquiryDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	preferenceFields := schema.Preference{}.Fields()
	_ = preferenceFields
	// preferenceDescValue is the schema descriptor for value field.
	preferenceDescValue := preferenceFields[1].Descriptor()
	// preference.DefaultValue holds the default value on creation for the value field.
	preference.DefaultValue = preferenceDescValue.Default.(string)
	studysessionMixin := schema.StudySession{}.Mixin()
	studysessionMixinFields0 := studysessionMixin[0].Fields()
	_ = studysessionMixinFields0
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescTimestamp is the schema descriptor for timestamp field.
	studysessionDescTimestamp := studysessionMixinFields0[1].Descriptor()
	// studysession.DefaultTimestamp holds the default value on creation for the timestamp field.
	studysession.DefaultTimestamp = studysessionDescTimestamp.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCollege is the schema descriptor for college field.
	userDescCollege := userFields[3].Descriptor()
	// user.DefaultCollege holds the default value on creation for the college field.
	user.DefaultCollege = userDescCollege.Default.(string)
	// userDescYear is the schema descriptor for year field.
	userDescYear := userFields[4].Descriptor()
	// user.DefaultYear holds the default value on creation for the year field.
	user.DefaultYear = userDescYear.Default.(string)
	// userDescAvatar is the schema descriptor for avatar field.
	userDescAvatar := userFields[5].Descriptor()
	// user.DefaultAvatar holds the default value on creation for the avatar field.
	user.DefaultAvatar = userDescAvatar.Default.(string)
	// userDescBloodGroup is the schema descriptor for blood_group field.
	userDescBloodGroup := userFields[8].Descriptor()
	// user.DefaultBloodGroup holds the default value on creation for the blood_group field.
	user.DefaultBloodGroup = userDescBloodGroup.Default.(string)
	// userDescEmergencyContact is the schema descriptor for emergency_contact field.
	userDescEmergencyContact := userFields[9].Descriptor()
	// user.DefaultEmergencyContact holds the default value on creation for the emergency_contact field.
	user.DefaultEmergencyContact = userDescEmergencyContact.Default.(string)
	// userDescContactNumber is the schema descriptor for contact_number field.
	userDescContactNumber := userFields[10].Descriptor()
	// user.DefaultContactNumber holds the default value on creation for the contact_number field.
	user.DefaultContactNumber = userDescContactNumber.Default.(string)
	// userDescCgpa is the schema descriptor for cgpa field.
	userDescCgpa := userFields[11].Descriptor()
	// user.DefaultCgpa holds the default value on creation for the cgpa field.
	user.DefaultCgpa = userDescCgpa.Default.(string)
	// userDescPercentage is the schema descriptor for percentage field.
	userDescPercentage := userFields[12].Descriptor()
	// user.DefaultPercentage holds the default value on creation for the percentage field.
	user.DefaultPercentage = userDescPercentage.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[17].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
