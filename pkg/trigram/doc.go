/*
Package trigram provides a small, in-memory trigram language model.

A Model is trained on raw text with Fit, which lowercases the input, splits it
into sentences, builds a frequency-bounded vocabulary and counts every
(w1, w2) -> w3 transition of the padded sentences. Generate then performs
ancestral sampling from the learned conditional distributions, starting from
two start markers and stopping on the end marker, on an unseen context, or at
the configured maximum length.

Randomness is injected through the Sampler interface, so a seeded sampler
gives reproducible output. A Model is not safe for concurrent use; callers
sharing one instance must serialize Fit and Generate themselves.
*/
package trigram
