// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/saketh8887/medconnect/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// College applies equality check predicate on the "college" field. It's identical to CollegeEQ.
func College(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCollege, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldYear, v))
}

// Avatar applies equality check predicate on the "avatar" field. It's identical to AvatarEQ.
func Avatar(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAvatar, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// BloodGroup applies equality check predicate on the "blood_group" field. It's identical to BloodGroupEQ.
func BloodGroup(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldBloodGroup, v))
}

// EmergencyContact applies equality check predicate on the "emergency_contact" field. It's identical to EmergencyContactEQ.
func EmergencyContact(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmergencyContact, v))
}

// ContactNumber applies equality check predicate on the "contact_number" field. It's identical to ContactNumberEQ.
func ContactNumber(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldContactNumber, v))
}

// Cgpa applies equality check predicate on the "cgpa" field. It's identical to CgpaEQ.
func Cgpa(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCgpa, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPercentage, v))
}

// LastLogin applies equality check predicate on the "last_login" field. It's identical to LastLoginEQ.
func LastLogin(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLogin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// CollegeEQ applies the EQ predicate on the "college" field.
func CollegeEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCollege, v))
}

// CollegeNEQ applies the NEQ predicate on the "college" field.
func CollegeNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCollege, v))
}

// CollegeIn applies the In predicate on the "college" field.
func CollegeIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldCollege, vs...))
}

// CollegeNotIn applies the NotIn predicate on the "college" field.
func CollegeNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCollege, vs...))
}

// CollegeGT applies the GT predicate on the "college" field.
func CollegeGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldCollege, v))
}

// CollegeGTE applies the GTE predicate on the "college" field.
func CollegeGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCollege, v))
}

// CollegeLT applies the LT predicate on the "college" field.
func CollegeLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldCollege, v))
}

// CollegeLTE applies the LTE predicate on the "college" field.
func CollegeLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCollege, v))
}

// CollegeContains applies the Contains predicate on the "college" field.
func CollegeContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldCollege, v))
}

// CollegeHasPrefix applies the HasPrefix predicate on the "college" field.
func CollegeHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldCollege, v))
}

// CollegeHasSuffix applies the HasSuffix predicate on the "college" field.
func CollegeHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldCollege, v))
}

// CollegeEqualFold applies the EqualFold predicate on the "college" field.
func CollegeEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldCollege, v))
}

// CollegeContainsFold applies the ContainsFold predicate on the "college" field.
func CollegeContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldCollege, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldYear, v))
}

// YearContains applies the Contains predicate on the "year" field.
func YearContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldYear, v))
}

// YearHasPrefix applies the HasPrefix predicate on the "year" field.
func YearHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldYear, v))
}

// YearHasSuffix applies the HasSuffix predicate on the "year" field.
func YearHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldYear, v))
}

// YearEqualFold applies the EqualFold predicate on the "year" field.
func YearEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldYear, v))
}

// YearContainsFold applies the ContainsFold predicate on the "year" field.
func YearContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldYear, v))
}

// AvatarEQ applies the EQ predicate on the "avatar" field.
func AvatarEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAvatar, v))
}

// AvatarNEQ applies the NEQ predicate on the "avatar" field.
func AvatarNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAvatar, v))
}

// AvatarIn applies the In predicate on the "avatar" field.
func AvatarIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAvatar, vs...))
}

// AvatarNotIn applies the NotIn predicate on the "avatar" field.
func AvatarNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAvatar, vs...))
}

// AvatarGT applies the GT predicate on the "avatar" field.
func AvatarGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAvatar, v))
}

// AvatarGTE applies the GTE predicate on the "avatar" field.
func AvatarGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAvatar, v))
}

// AvatarLT applies the LT predicate on the "avatar" field.
func AvatarLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAvatar, v))
}

// AvatarLTE applies the LTE predicate on the "avatar" field.
func AvatarLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAvatar, v))
}

// AvatarContains applies the Contains predicate on the "avatar" field.
func AvatarContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAvatar, v))
}

// AvatarHasPrefix applies the HasPrefix predicate on the "avatar" field.
func AvatarHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAvatar, v))
}

// AvatarHasSuffix applies the HasSuffix predicate on the "avatar" field.
func AvatarHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAvatar, v))
}

// AvatarEqualFold applies the EqualFold predicate on the "avatar" field.
func AvatarEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAvatar, v))
}

// AvatarContainsFold applies the ContainsFold predicate on the "avatar" field.
func AvatarContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAvatar, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// BloodGroupEQ applies the EQ predicate on the "blood_group" field.
func BloodGroupEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldBloodGroup, v))
}

// BloodGroupNEQ applies the NEQ predicate on the "blood_group" field.
func BloodGroupNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldBloodGroup, v))
}

// BloodGroupIn applies the In predicate on the "blood_group" field.
func BloodGroupIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldBloodGroup, vs...))
}

// BloodGroupNotIn applies the NotIn predicate on the "blood_group" field.
func BloodGroupNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldBloodGroup, vs...))
}

// BloodGroupGT applies the GT predicate on the "blood_group" field.
func BloodGroupGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldBloodGroup, v))
}

// BloodGroupGTE applies the GTE predicate on the "blood_group" field.
func BloodGroupGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldBloodGroup, v))
}

// BloodGroupLT applies the LT predicate on the "blood_group" field.
func BloodGroupLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldBloodGroup, v))
}

// BloodGroupLTE applies the LTE predicate on the "blood_group" field.
func BloodGroupLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldBloodGroup, v))
}

// BloodGroupContains applies the Contains predicate on the "blood_group" field.
func BloodGroupContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldBloodGroup, v))
}

// BloodGroupHasPrefix applies the HasPrefix predicate on the "blood_group" field.
func BloodGroupHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldBloodGroup, v))
}

// BloodGroupHasSuffix applies the HasSuffix predicate on the "blood_group" field.
func BloodGroupHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldBloodGroup, v))
}

// BloodGroupEqualFold applies the EqualFold predicate on the "blood_group" field.
func BloodGroupEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldBloodGroup, v))
}

// BloodGroupContainsFold applies the ContainsFold predicate on the "blood_group" field.
func BloodGroupContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldBloodGroup, v))
}

// EmergencyContactEQ applies the EQ predicate on the "emergency_contact" field.
func EmergencyContactEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmergencyContact, v))
}

// EmergencyContactNEQ applies the NEQ predicate on the "emergency_contact" field.
func EmergencyContactNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmergencyContact, v))
}

// EmergencyContactIn applies the In predicate on the "emergency_contact" field.
func EmergencyContactIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmergencyContact, vs...))
}

// EmergencyContactNotIn applies the NotIn predicate on the "emergency_contact" field.
func EmergencyContactNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmergencyContact, vs...))
}

// EmergencyContactGT applies the GT predicate on the "emergency_contact" field.
func EmergencyContactGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmergencyContact, v))
}

// EmergencyContactGTE applies the GTE predicate on the "emergency_contact" field.
func EmergencyContactGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmergencyContact, v))
}

// EmergencyContactLT applies the LT predicate on the "emergency_contact" field.
func EmergencyContactLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmergencyContact, v))
}

// EmergencyContactLTE applies the LTE predicate on the "emergency_contact" field.
func EmergencyContactLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmergencyContact, v))
}

// EmergencyContactContains applies the Contains predicate on the "emergency_contact" field.
func EmergencyContactContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmergencyContact, v))
}

// EmergencyContactHasPrefix applies the HasPrefix predicate on the "emergency_contact" field.
func EmergencyContactHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmergencyContact, v))
}

// EmergencyContactHasSuffix applies the HasSuffix predicate on the "emergency_contact" field.
func EmergencyContactHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmergencyContact, v))
}

// EmergencyContactEqualFold applies the EqualFold predicate on the "emergency_contact" field.
func EmergencyContactEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmergencyContact, v))
}

// EmergencyContactContainsFold applies the ContainsFold predicate on the "emergency_contact" field.
func EmergencyContactContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmergencyContact, v))
}

// ContactNumberEQ applies the EQ predicate on the "contact_number" field.
func ContactNumberEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldContactNumber, v))
}

// ContactNumberNEQ applies the NEQ predicate on the "contact_number" field.
func ContactNumberNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldContactNumber, v))
}

// ContactNumberIn applies the In predicate on the "contact_number" field.
func ContactNumberIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldContactNumber, vs...))
}

// ContactNumberNotIn applies the NotIn predicate on the "contact_number" field.
func ContactNumberNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldContactNumber, vs...))
}

// ContactNumberGT applies the GT predicate on the "contact_number" field.
func ContactNumberGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldContactNumber, v))
}

// ContactNumberGTE applies the GTE predicate on the "contact_number" field.
func ContactNumberGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldContactNumber, v))
}

// ContactNumberLT applies the LT predicate on the "contact_number" field.
func ContactNumberLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldContactNumber, v))
}

// ContactNumberLTE applies the LTE predicate on the "contact_number" field.
func ContactNumberLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldContactNumber, v))
}

// ContactNumberContains applies the Contains predicate on the "contact_number" field.
func ContactNumberContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldContactNumber, v))
}

// ContactNumberHasPrefix applies the HasPrefix predicate on the "contact_number" field.
func ContactNumberHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldContactNumber, v))
}

// ContactNumberHasSuffix applies the HasSuffix predicate on the "contact_number" field.
func ContactNumberHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldContactNumber, v))
}

// ContactNumberEqualFold applies the EqualFold predicate on the "contact_number" field.
func ContactNumberEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldContactNumber, v))
}

// ContactNumberContainsFold applies the ContainsFold predicate on the "contact_number" field.
func ContactNumberContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldContactNumber, v))
}

// CgpaEQ applies the EQ predicate on the "cgpa" field.
func CgpaEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCgpa, v))
}

// CgpaNEQ applies the NEQ predicate on the "cgpa" field.
func CgpaNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCgpa, v))
}

// CgpaIn applies the In predicate on the "cgpa" field.
func CgpaIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldCgpa, vs...))
}

// CgpaNotIn applies the NotIn predicate on the "cgpa" field.
func CgpaNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCgpa, vs...))
}

// CgpaGT applies the GT predicate on the "cgpa" field.
func CgpaGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldCgpa, v))
}

// CgpaGTE applies the GTE predicate on the "cgpa" field.
func CgpaGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCgpa, v))
}

// CgpaLT applies the LT predicate on the "cgpa" field.
func CgpaLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldCgpa, v))
}

// CgpaLTE applies the LTE predicate on the "cgpa" field.
func CgpaLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCgpa, v))
}

// CgpaContains applies the Contains predicate on the "cgpa" field.
func CgpaContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldCgpa, v))
}

// CgpaHasPrefix applies the HasPrefix predicate on the "cgpa" field.
func CgpaHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldCgpa, v))
}

// CgpaHasSuffix applies the HasSuffix predicate on the "cgpa" field.
func CgpaHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldCgpa, v))
}

// CgpaEqualFold applies the EqualFold predicate on the "cgpa" field.
func CgpaEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldCgpa, v))
}

// CgpaContainsFold applies the ContainsFold predicate on the "cgpa" field.
func CgpaContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldCgpa, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPercentage, v))
}

// PercentageContains applies the Contains predicate on the "percentage" field.
func PercentageContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPercentage, v))
}

// PercentageHasPrefix applies the HasPrefix predicate on the "percentage" field.
func PercentageHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPercentage, v))
}

// PercentageHasSuffix applies the HasSuffix predicate on the "percentage" field.
func PercentageHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPercentage, v))
}

// PercentageEqualFold applies the EqualFold predicate on the "percentage" field.
func PercentageEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPercentage, v))
}

// PercentageContainsFold applies the ContainsFold predicate on the "percentage" field.
func PercentageContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPercentage, v))
}

// LastLoginEQ applies the EQ predicate on the "last_login" field.
func LastLoginEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLogin, v))
}

// LastLoginNEQ applies the NEQ predicate on the "last_login" field.
func LastLoginNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLogin, v))
}

// LastLoginIn applies the In predicate on the "last_login" field.
func LastLoginIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLogin, vs...))
}

// LastLoginNotIn applies the NotIn predicate on the "last_login" field.
func LastLoginNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLogin, vs...))
}

// LastLoginGT applies the GT predicate on the "last_login" field.
func LastLoginGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLogin, v))
}

// LastLoginGTE applies the GTE predicate on the "last_login" field.
func LastLoginGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLogin, v))
}

// LastLoginLT applies the LT predicate on the "last_login" field.
func LastLoginLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLogin, v))
}

// LastLoginLTE applies the LTE predicate on the "last_login" field.
func LastLoginLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLogin, v))
}

// LastLoginIsNil applies the IsNil predicate on the "last_login" field.
func LastLoginIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLogin))
}

// LastLoginNotNil applies the NotNil predicate on the "last_login" field.
func LastLoginNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLogin))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
