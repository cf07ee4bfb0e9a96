package visitors

import (
	"seqstats/internal/logger"
	"seqstats/internal/output"
	"seqstats/internal/pipeline"
	"seqstats/internal/runutil"
)

// Reporter turns pipeline results into output reports and logs the
// warnings a user should see: discarded characters and windows wider than
// the sequence. Results without a sequence are dropped.
type Reporter struct {
	Log        *logger.Logger
	Window     int
	SkewWindow int
	MaxPoints  int
	NeedSkew   bool
}

func (v Reporter) Visit(r pipeline.Result) (keep bool, out output.Report, err error) {
	if r.Metrics == nil {
		return false, out, nil
	}
	if v.Log != nil {
		if r.Clean.Dropped > 0 {
			v.Log.Warn().Str("sequence", r.Job.ID).Int("dropped", r.Clean.Dropped).
				Msg("discarded characters outside A/T/G/C/N")
		}
		if w := runutil.WindowWarning("--window", v.Window, r.Metrics.Length); w != "" {
			v.Log.Warn().Str("sequence", r.Job.ID).Msg(w)
		}
	}
	out = output.Report{
		ID:       r.Job.ID,
		Source:   r.Job.Source,
		Sequence: r.Clean.Sequence,
		Dropped:  r.Clean.Dropped,
		Metrics:  r.Metrics,
	}
	if v.NeedSkew {
		out = out.WithSkew(v.SkewWindow, v.MaxPoints)
	}
	return true, out, nil
}
