// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillpath/ent/learningpath"
	"github.com/abhisek/skillpath/ent/llmrequestevent"
	"github.com/abhisek/skillpath/ent/pathevent"
	"github.com/abhisek/skillpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescUserID is the schema descriptor for user_id field.
	learningpathDescUserID := learningpathFields[1].Descriptor()
	// learningpath.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningpath.UserIDValidator = learningpathDescUserID.Validators[0].(func(string) error)
	// learningpathDescGenerated is the schema descriptor for generated field.
	learningpathDescGenerated := learningpathFields[2].Descriptor()
	// learningpath.DefaultGenerated holds the default value on creation for the generated field.
	learningpath.DefaultGenerated = learningpathDescGenerated.Default.(func() time.Time)
	// learningpathDescProgress is the schema descriptor for progress field.
	learningpathDescProgress := learningpathFields[4].Descriptor()
	// learningpath.DefaultProgress holds the default value on creation for the progress field.
	learningpath.DefaultProgress = learningpathDescProgress.Default.(int)
	// learningpathDescID is the schema descriptor for id field.
	learningpathDescID := learningpathFields[0].Descriptor()
	// learningpath.DefaultID holds the default value on creation for the id field.
	learningpath.DefaultID = learningpathDescID.Default.(func() string)
	patheventMixin := schema.PathEvent{}.Mixin()
	patheventMixinFields0 := patheventMixin[0].Fields()
	_ = patheventMixinFields0
	patheventFields := schema.PathEvent{}.Fields()
	_ = patheventFields
	// patheventDescTimestamp is the schema descriptor for timestamp field.
	patheventDescTimestamp := patheventMixinFields0[1].Descriptor()
	// pathevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathevent.DefaultTimestamp = patheventDescTimestamp.Default.(func() time.Time)
	// patheventDescPathID is the schema descriptor for path_id field.
	patheventDescPathID := patheventFields[0].Descriptor()
	// pathevent.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	pathevent.PathIDValidator = patheventDescPathID.Validators[0].(func(string) error)
	// patheventDescAction is the schema descriptor for action field.
	patheventDescAction := patheventFields[1].Descriptor()
	// pathevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	pathevent.ActionValidator = patheventDescAction.Validators[0].(func(string) error)
	// patheventDescModuleIndex is the schema descriptor for module_index field.
	patheventDescModuleIndex := patheventFields[2].Descriptor()
	// pathevent.DefaultModuleIndex holds the default value on creation for the module_index field.
	pathevent.DefaultModuleIndex = patheventDescModuleIndex.Default.(int)
	// patheventDescPercent is the schema descriptor for percent field.
	patheventDescPercent := patheventFields[3].Descriptor()
	// pathevent.DefaultPercent holds the default value on creation for the percent field.
	pathevent.DefaultPercent = patheventDescPercent.Default.(int)
}
