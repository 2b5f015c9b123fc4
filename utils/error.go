package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

var ErrorUnknownDocumentType = errors.New("unknown document type")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
