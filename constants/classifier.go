package constants

// Classifier is the kind of model the external trainer fits for a project.
type Classifier string

const (
	ClassifierLogisticRegression Classifier = "logistic_regression"
	ClassifierSVM                Classifier = "svm"
	ClassifierRandomForest       Classifier = "random_forest"
	ClassifierNaiveBayes         Classifier = "naive_bayes"
)

var allClassifiers = []Classifier{
	ClassifierLogisticRegression,
	ClassifierSVM,
	ClassifierRandomForest,
	ClassifierNaiveBayes,
}

// Classifiers returns the allowed classifier kinds as strings.
func Classifiers() []string {
	result := make([]string, len(allClassifiers))
	for i, c := range allClassifiers {
		result[i] = string(c)
	}
	return result
}
