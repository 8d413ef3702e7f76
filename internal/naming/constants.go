package naming

// DisplayFormatTemplate renders a card with its rarity: "<name> (<rarity>)"
const DisplayFormatTemplate = "%s (%s)"
