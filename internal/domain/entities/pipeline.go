package entities

// PipelineStage names one stage of the clip extraction pipeline. Stages run
// strictly in order; a failure in any stage moves the run to StageFailed and
// stops processing.
type PipelineStage string

const (
	StageResolving    PipelineStage = "resolving"
	StageTranscribing PipelineStage = "transcribing"
	StageSegmenting   PipelineStage = "segmenting"
	StageIdentifying  PipelineStage = "identifying"
	StageDone         PipelineStage = "done"
	StageFailed       PipelineStage = "failed"
)

// PipelineResult is the aggregate output of one successful pipeline run.
// Built once per request and not persisted.
type PipelineResult struct {
	RunID             string
	VodURL            string
	AudioURL          string
	TranscriptID      string
	TranscriptPreview string
	Clips             []ClipCandidate
}
