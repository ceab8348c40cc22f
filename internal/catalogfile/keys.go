package catalogfile

const (
	sectionServices        = "services"
	sectionCharacteristics = "characteristics"

	keyIdentifier    = "identifier"
	keyName          = "name"
	keyGeneratedName = "generatedName"
	keyDocumentation = "documentation"
	keyDeprecated    = "deprecated"
	keyValueType     = "valueType"
	keyRequired      = "requiredCharacteristics"
	keyOptional      = "optionalCharacteristics"
)

// Header is the comment written at the top of every catalog file.
const Header = "# Code generated by hapcatalog. DO NOT EDIT.\n"

func isRecordKey(key string) bool {
	switch key {
	case keyIdentifier, keyName, keyGeneratedName, keyDocumentation,
		keyDeprecated, keyValueType, keyRequired, keyOptional:
		return true
	}

	return false
}
