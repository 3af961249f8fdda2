/*
Package decor contains the text segments used by "github.com/vbauerster/tqdm"
package to build a bar line, together with the rate and ETA estimators.

Segments are plain functions of Statistics, a point-in-time copy of bar
state. None of them panic on arbitrary input: fractions are clamped and
unknown values are rendered as "?".

Estimators are not safe for concurrent use. Every bar owns its own
RateEstimator, which is guarded by the bar record lock.
*/
package decor
