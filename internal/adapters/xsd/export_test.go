package xsd

import "go.trai.ch/toolbelt/internal/core/domain"

func CheckWellFormed(doc []byte, systemID string) (domain.Diagnostic, bool) {
	return checkWellFormed(doc, systemID)
}

func LocateColumn(doc []byte, line int, name string) int {
	return newLocator(doc).column(line, name)
}

func ParserDiagnostic(doc []byte, systemID, msg string) domain.Diagnostic {
	return parserDiagnostic(doc, systemID, msg)
}

func ExpandEntities(doc []byte) []byte {
	return expandEntities(doc)
}
