package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// maxFeatures caps the vocabulary to the most frequent terms so a pair of
// very long documents stays cheap to compare.
const maxFeatures = 1000

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again against all am an and any are as at be because
been before being below between both but by can did do does doing down during each few for from further had has
have having he her here hers herself him himself his how i if in into is it its itself just me more most my
myself no nor not now of off on once only or other our ours ourselves out over own same she should so some such
than that the their theirs them themselves then there these they this those through to too under until up very
was we were what when where which while who whom why will with you your yours yourself yourselves`) {
		stopwords[w] = struct{}{}
	}
}

// Similarity computes the cosine similarity of the tf-idf vectors of two
// documents over a shared unigram plus bigram vocabulary. The result is in
// [0,1]; degenerate input (either document empty after tokenization) yields 0.
func Similarity(docA, docB string) float64 {
	termsA := ngrams(tokenize(docA))
	termsB := ngrams(tokenize(docB))
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0
	}

	countsA := termCounts(termsA)
	countsB := termCounts(termsB)
	vocab := selectVocabulary(countsA, countsB)

	vecA := tfidfVector(countsA, countsB, vocab)
	vecB := tfidfVector(countsB, countsA, vocab)

	var dot float64
	for i := range vecA {
		dot += vecA[i] * vecB[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping
// single-character tokens and stopwords.
func tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// ngrams returns the unigrams plus adjacent bigrams of the token stream.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// selectVocabulary keeps the maxFeatures most frequent terms across both
// documents, breaking frequency ties alphabetically for determinism.
func selectVocabulary(countsA, countsB map[string]int) []string {
	total := make(map[string]int, len(countsA)+len(countsB))
	for t, c := range countsA {
		total[t] += c
	}
	for t, c := range countsB {
		total[t] += c
	}

	vocab := make([]string, 0, len(total))
	for t := range total {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

// tfidfVector builds the l2-normalized tf-idf vector of the document with
// counts `own`, using smoothed idf over the two-document corpus.
func tfidfVector(own, other map[string]int, vocab []string) []float64 {
	const numDocs = 2

	vec := make([]float64, len(vocab))
	var norm float64
	for i, term := range vocab {
		tf := float64(own[term])
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(float64(1+numDocs)/float64(1+df)) + 1
		vec[i] = tf * idf
		norm += vec[i] * vec[i]
	}

	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
